package models

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewImageDataTakesSizeFromBounds(t *testing.T) {
	data := NewImageData(image.NewGray(image.Rect(0, 0, 32, 16)), "png", "stdlib")
	data.Path = "/tmp/pics/photo.png"

	assert.Equal(t, 32, data.Width)
	assert.Equal(t, 16, data.Height)
	assert.False(t, data.Empty())
	assert.Equal(t, "/tmp/pics", data.Dir())
	assert.Equal(t, "photo.png (32x16 png)", data.Title())
}

func TestEmptyImagePlaceholder(t *testing.T) {
	data := EmptyImage("/tmp/broken.xpm")

	assert.True(t, data.Empty())
	assert.NotNil(t, data.Image)
	assert.True(t, data.Image.Bounds().Empty())
	assert.Equal(t, "broken.xpm", data.Title())
	assert.Equal(t, "/tmp", data.Dir())
}

func TestNilImageDataIsEmpty(t *testing.T) {
	var data *ImageData

	assert.True(t, data.Empty())
	assert.Equal(t, "", data.Dir())
}
