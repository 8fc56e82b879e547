package gui

import (
	"strings"
	"sync"

	"image-viewer/internal/config"
	"image-viewer/internal/logger"
	"image-viewer/internal/models"
	"image-viewer/internal/view"

	"fyne.io/fyne/v2"
)

// DecodeFailurePolicy decides what the user sees when an image cannot be
// decoded. Either way an empty image replaces the current one.
type DecodeFailurePolicy int

const (
	PolicySilent DecodeFailurePolicy = iota
	PolicyReport
)

func ParseDecodeFailurePolicy(name string) DecodeFailurePolicy {
	if strings.EqualFold(strings.TrimSpace(name), "report") {
		return PolicyReport
	}
	return PolicySilent
}

func (p DecodeFailurePolicy) String() string {
	if p == PolicyReport {
		return "report"
	}
	return "silent"
}

// Presenter is everything the controller needs from the window.
type Presenter interface {
	Dialog
	ShowImage(data *models.ImageData)
	FitToView()
	ZoomIn()
	ZoomOut()
	SetPixelSample(sample view.PixelSample)
	ShowError(err error)
}

// ImageLoader decodes a selected file and closes the reader.
type ImageLoader interface {
	LoadFromReader(reader fyne.URIReadCloser) (*models.ImageData, error)
}

type ConfigStore interface {
	Load() config.Config
	Save(cfg config.Config) error
}

// Controller turns menu actions, shortcuts and canvas events into work.
type Controller struct {
	presenter Presenter
	loader    ImageLoader
	store     ConfigStore
	logger    logger.Logger
	policy    DecodeFailurePolicy

	mu  sync.Mutex
	cfg config.Config
}

// NewController reads the persisted state once; a missing file is the
// empty state.
func NewController(loader ImageLoader, store ConfigStore, log logger.Logger, policy DecodeFailurePolicy) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		loader: loader,
		store:  store,
		logger: log,
		policy: policy,
		cfg:    store.Load(),
	}
}

func (c *Controller) SetPresenter(p Presenter) {
	c.presenter = p
}

func (c *Controller) LastOpenPath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.LastOpenPath
}

// OpenFile asks for an image and displays it.
func (c *Controller) OpenFile() {
	c.open(ImageFilter)
}

// OpenAnyFile is OpenFile without the extension filter.
func (c *Controller) OpenAnyFile() {
	c.open(AllFilesFilter)
}

func (c *Controller) open(filter FileFilter) {
	if c.presenter == nil {
		return
	}

	c.presenter.SelectFile(filter, c.LastOpenPath(), func(reader fyne.URIReadCloser) {
		if reader == nil {
			c.logger.Debug("Controller", "open cancelled", nil)
			return
		}
		c.openReader(reader)
	})
}

func (c *Controller) openReader(reader fyne.URIReadCloser) {
	path := reader.URI().Path()

	data, err := c.loader.LoadFromReader(reader)
	if err != nil {
		c.logger.Error("Controller", err, map[string]interface{}{
			"path":   path,
			"policy": c.policy.String(),
		})
		if c.policy == PolicyReport {
			c.presenter.ShowError(err)
		}
		data = models.EmptyImage(path)
	}

	c.presenter.ShowImage(data)

	c.mu.Lock()
	c.cfg.LastOpenPath = data.Dir()
	cfg := c.cfg
	c.mu.Unlock()

	c.persist(cfg)
}

func (c *Controller) persist(cfg config.Config) {
	if err := c.store.Save(cfg); err != nil {
		c.logger.Error("Controller", err, map[string]interface{}{
			"last_open_path": cfg.LastOpenPath,
		})
	}
}

func (c *Controller) ZoomIn() {
	if c.presenter != nil {
		c.presenter.ZoomIn()
	}
}

func (c *Controller) ZoomOut() {
	if c.presenter != nil {
		c.presenter.ZoomOut()
	}
}

func (c *Controller) ResetZoom() {
	if c.presenter != nil {
		c.presenter.FitToView()
	}
}

func (c *Controller) OnPixelSample(sample view.PixelSample) {
	if c.presenter != nil {
		c.presenter.SetPixelSample(sample)
	}
}

// Shutdown only records the final state: every change was already saved
// when it happened.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	cfg := c.cfg
	c.mu.Unlock()

	c.logger.Info("Controller", "shutdown complete", map[string]interface{}{
		"last_open_path": cfg.LastOpenPath,
	})
}
