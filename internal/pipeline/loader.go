package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"
	"time"

	"image-viewer/internal/logger"
	"image-viewer/internal/models"

	"fyne.io/fyne/v2"
	"gocv.io/x/gocv"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUndecodable is returned when no registered codec understands the data.
var ErrUndecodable = errors.New("image data could not be decoded")

const (
	decoderStdlib = "stdlib"
	decoderOpenCV = "opencv"
)

// Loader decodes image files into models.ImageData. Go codecs are tried
// first; OpenCV handles anything they reject.
type Loader struct {
	logger logger.Logger

	// fallback is swapped out in tests.
	fallback func(data []byte) (image.Image, error)
}

func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{logger: log, fallback: decodeOpenCV}
}

// LoadFromReader consumes and closes reader.
func (l *Loader) LoadFromReader(reader fyne.URIReadCloser) (*models.ImageData, error) {
	defer reader.Close()
	return l.load(reader, reader.URI().Path())
}

func (l *Loader) load(r io.Reader, path string) (*models.ImageData, error) {
	start := time.Now()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	l.logger.Debug("ImageLoader", "image data read", map[string]interface{}{
		"path":       path,
		"size_bytes": len(data),
	})

	imageData, err := l.LoadFromBytes(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	imageData.Path = path
	imageData.Size = int64(len(data))
	imageData.LoadTime = time.Since(start)

	l.logger.Info("ImageLoader", "image loaded successfully", map[string]interface{}{
		"path":    path,
		"width":   imageData.Width,
		"height":  imageData.Height,
		"format":  imageData.Format,
		"decoder": imageData.Decoder,
		"elapsed": imageData.LoadTime.String(),
	})
	return imageData, nil
}

// LoadFromBytes decodes data; extension is only a format hint for reporting.
func (l *Loader) LoadFromBytes(data []byte, extension string) (*models.ImageData, error) {
	if len(data) == 0 {
		return nil, ErrUndecodable
	}

	img, stdFormat, stdErr := image.Decode(bytes.NewReader(data))
	if stdErr == nil {
		return models.NewImageData(img, determineActualFormat(extension, stdFormat), decoderStdlib), nil
	}

	l.logger.Debug("ImageLoader", "go codecs rejected data, trying OpenCV", map[string]interface{}{
		"extension": extension,
		"error":     stdErr.Error(),
	})

	img, cvErr := l.fallback(data)
	if cvErr != nil {
		return nil, fmt.Errorf("%w: %v; %v", ErrUndecodable, stdErr, cvErr)
	}
	return models.NewImageData(img, determineActualFormat(extension, ""), decoderOpenCV), nil
}

func decodeOpenCV(data []byte) (image.Image, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("opencv decode: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("opencv decode: empty result")
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("opencv conversion: %w", err)
	}
	return img, nil
}

func determineActualFormat(extension, stdLibFormat string) string {
	if stdLibFormat != "" {
		return stdLibFormat
	}
	switch extension {
	case ".tiff", ".tif":
		return "tiff"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".png":
		return "png"
	case ".bmp":
		return "bmp"
	case ".gif":
		return "gif"
	case ".webp":
		return "webp"
	case ".xpm":
		return "xpm"
	default:
		return "unknown"
	}
}
