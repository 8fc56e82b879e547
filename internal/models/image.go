package models

import (
	"fmt"
	"image"
	"path/filepath"
	"time"
)

// ImageData is a decoded image together with where it came from.
type ImageData struct {
	Image    image.Image
	Width    int
	Height   int
	Format   string
	Path     string
	Size     int64
	Decoder  string
	LoadTime time.Duration
}

func NewImageData(img image.Image, format, decoder string) *ImageData {
	bounds := img.Bounds()
	return &ImageData{
		Image:   img,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Format:  format,
		Decoder: decoder,
	}
}

// Empty reports a zero-area image, which is what an undecodable file turns into.
func (d *ImageData) Empty() bool {
	return d == nil || d.Image == nil || d.Width <= 0 || d.Height <= 0
}

// Dir is the directory the image was opened from.
func (d *ImageData) Dir() string {
	if d == nil || d.Path == "" {
		return ""
	}
	return filepath.Dir(d.Path)
}

func (d *ImageData) Title() string {
	if d.Empty() {
		return filepath.Base(d.Path)
	}
	return fmt.Sprintf("%s (%dx%d %s)", filepath.Base(d.Path), d.Width, d.Height, d.Format)
}

// EmptyImage is the placeholder loaded when a file cannot be decoded.
func EmptyImage(path string) *ImageData {
	return &ImageData{
		Image:  image.NewNRGBA(image.Rectangle{}),
		Format: "unknown",
		Path:   path,
	}
}
