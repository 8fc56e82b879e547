package gui

import (
	"fmt"

	"image-viewer/internal/gui/components"
	"image-viewer/internal/logger"
	"image-viewer/internal/models"
	"image-viewer/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const (
	AppTitle     = "Image Viewer"
	WindowWidth  = 800
	WindowHeight = 600
)

// View owns the window chrome: canvas, pixel label, menus and shortcuts.
type View struct {
	window     fyne.Window
	controller *Controller
	logger     logger.Logger

	canvas        *components.ImageCanvas
	pixelLabel    *components.PixelLabel
	dialog        Dialog
	mainContainer *fyne.Container
}

func NewView(window fyne.Window, log logger.Logger) *View {
	if log == nil {
		log = logger.Nop()
	}
	v := &View{
		window: window,
		logger: log,
		dialog: NewFyneDialog(window, log),
	}

	v.setupComponents()
	v.setupLayout()

	return v
}

// SetController wires canvas events, menus and shortcuts to c.
func (v *View) SetController(c *Controller) {
	v.controller = c
	c.SetPresenter(v)

	v.setupEventHandlers()
	v.setupMenus()
	v.setupShortcuts()
}

func (v *View) setupComponents() {
	v.canvas = components.NewImageCanvas()
	v.pixelLabel = components.NewPixelLabel()
}

func (v *View) setupLayout() {
	v.mainContainer = container.NewBorder(
		nil,          // top
		v.pixelLabel, // bottom
		nil,          // left
		nil,          // right
		v.canvas,     // center
	)

	v.window.SetTitle(AppTitle)
	v.window.SetContent(v.mainContainer)
}

func (v *View) setupEventHandlers() {
	v.canvas.SetOnPixelSample(v.controller.OnPixelSample)
}

// Presenter implementation

func (v *View) SelectFile(filter FileFilter, initialDir string, callback func(reader fyne.URIReadCloser)) {
	v.dialog.SelectFile(filter, initialDir, callback)
}

func (v *View) ShowImage(data *models.ImageData) {
	v.canvas.Load(data.Image)
	v.window.SetTitle(fmt.Sprintf("%s - %s", data.Title(), AppTitle))

	v.logger.Debug("View", "image displayed", map[string]interface{}{
		"path":  data.Path,
		"empty": data.Empty(),
	})
}

func (v *View) FitToView() {
	v.canvas.FitToView()
}

func (v *View) ZoomIn() {
	v.canvas.ZoomIn()
}

func (v *View) ZoomOut() {
	v.canvas.ZoomOut()
}

func (v *View) SetPixelSample(sample view.PixelSample) {
	v.pixelLabel.SetSample(sample)
}

func (v *View) ShowError(err error) {
	dialog.ShowError(err, v.window)
}

// Window management

func (v *View) Close() {
	v.window.Close()
}
