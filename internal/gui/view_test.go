package gui

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"image-viewer/internal/config"
	"image-viewer/internal/pipeline"
	"image-viewer/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

type openedFile struct {
	*os.File
	uri fyne.URI
}

func (f *openedFile) URI() fyne.URI { return f.uri }

type fakeDialog struct {
	t    *testing.T
	path string
}

func (d *fakeDialog) SelectFile(_ FileFilter, _ string, callback func(fyne.URIReadCloser)) {
	if d.path == "" {
		callback(nil)
		return
	}
	f, err := os.Open(d.path)
	require.NoError(d.t, err)
	callback(&openedFile{File: f, uri: storage.NewFileURI(d.path)})
}

func newTestView(t *testing.T) (*View, *Controller, fyne.Window) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	v := NewView(w, nil)
	c := NewController(pipeline.NewLoader(nil), config.NewStore(t.TempDir(), nil), nil, PolicySilent)
	v.SetController(c)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	return v, c, w
}

func writeBMP(t *testing.T, dir string) string {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	path := filepath.Join(dir, "white.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, bmp.Encode(f, img))
	return path
}

func findItem(menu *fyne.Menu, label string) *fyne.MenuItem {
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	return nil
}

func TestMenusCarryAccelerators(t *testing.T) {
	_, _, w := newTestView(t)

	mainMenu := w.MainMenu()
	require.NotNil(t, mainMenu)
	require.Len(t, mainMenu.Items, 2)

	file, viewMenu := mainMenu.Items[0], mainMenu.Items[1]
	assert.Equal(t, "File", file.Label)
	assert.Equal(t, "View", viewMenu.Label)

	require.NotNil(t, findItem(file, "Open"))
	assert.Equal(t, ShortcutOpen, findItem(file, "Open").Shortcut)
	assert.Equal(t, ShortcutZoomIn, findItem(viewMenu, "Zoom In").Shortcut)
	assert.Equal(t, ShortcutZoomOut, findItem(viewMenu, "Zoom Out").Shortcut)
	assert.Equal(t, ShortcutResetZoom, findItem(viewMenu, "Reset Zoom").Shortcut)
}

func TestOpenMenuDisplaysImageAndPersists(t *testing.T) {
	v, c, w := newTestView(t)
	path := writeBMP(t, t.TempDir())
	v.dialog = &fakeDialog{t: t, path: path}

	findItem(w.MainMenu().Items[0], "Open").Action()

	assert.True(t, v.canvas.HasImage())
	assert.Equal(t, filepath.Dir(path), c.LastOpenPath())
	assert.Contains(t, w.Title(), "white.bmp")
}

func TestCancelledOpenKeepsCanvasEmpty(t *testing.T) {
	v, c, w := newTestView(t)
	v.dialog = &fakeDialog{t: t}

	findItem(w.MainMenu().Items[0], "Open").Action()

	assert.False(t, v.canvas.HasImage())
	assert.Equal(t, "", c.LastOpenPath())
	assert.Equal(t, AppTitle, w.Title())
}

func TestViewMenuDrivesCanvasZoom(t *testing.T) {
	v, _, w := newTestView(t)
	v.dialog = &fakeDialog{t: t, path: writeBMP(t, t.TempDir())}
	findItem(w.MainMenu().Items[0], "Open").Action()
	fitted := v.canvas.Transform().Scale

	viewMenu := w.MainMenu().Items[1]
	findItem(viewMenu, "Zoom In").Action()
	assert.InDelta(t, fitted*1.25, v.canvas.Transform().Scale, 1e-9)

	findItem(viewMenu, "Reset Zoom").Action()
	assert.InDelta(t, fitted, v.canvas.Transform().Scale, 1e-9)
}

func TestPixelSamplesReachLabel(t *testing.T) {
	v, c, _ := newTestView(t)

	c.OnPixelSample(view.PixelSample{R: 255, G: 0, B: 0, InBounds: true})
	assert.Equal(t, "Pixel Value: R=255 G=0 B=0", v.pixelLabel.Text())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, v.pixelLabel.Style().Background)

	c.OnPixelSample(view.OutOfBounds())
	assert.Equal(t, "Pixel Value: Out of bounds", v.pixelLabel.Text())
	assert.False(t, v.pixelLabel.Style().Swatch)
}

func TestEscapeClosesWindow(t *testing.T) {
	_, _, w := newTestView(t)
	closed := false
	w.SetOnClosed(func() { closed = true })

	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})

	assert.True(t, closed)
}
