package main

import (
	"log"
	"os"
	"runtime"

	"image-viewer/internal/config"
	"image-viewer/internal/gui"
	"image-viewer/internal/logger"
	"image-viewer/internal/pipeline"
	"image-viewer/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID      = "com.imageviewer.pixel-peek"
	AppVersion = "1.0.0"
)

// Application holds the long-lived pieces of the viewer.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	view       *gui.View
	controller *gui.Controller
	shutdown   *shutdown.Manager
}

func main() {
	application, err := NewApplication()
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication builds the window and wires the components together.
func NewApplication() (*Application, error) {
	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(gui.AppTitle)
	window.Resize(fyne.NewSize(gui.WindowWidth, gui.WindowHeight))
	window.CenterOnScreen()

	configDir, err := configDirectory()
	if err != nil {
		return nil, err
	}

	policy := gui.ParseDecodeFailurePolicy(os.Getenv("IMAGE_VIEWER_DECODE_ERRORS"))
	store := config.NewStore(configDir, appLogger)
	loader := pipeline.NewLoader(appLogger)

	controller := gui.NewController(loader, store, appLogger, policy)
	view := gui.NewView(window, appLogger)
	view.SetController(controller)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("controller", controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		view:       view,
		controller: controller,
		shutdown:   shutdownManager,
	}
	application.setupWindowEvents()

	appLogger.Info("Application", "initialized", map[string]interface{}{
		"version":        AppVersion,
		"go_version":     runtime.Version(),
		"config_file":    store.Path(),
		"last_open_path": controller.LastOpenPath(),
		"decode_policy":  policy.String(),
	})

	return application, nil
}

// Run blocks until the window is closed.
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.window.Close)
	})

	a.window.ShowAndRun()
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
		a.shutdown.Shutdown()
	})
}

// configDirectory is the working directory unless IMAGE_VIEWER_CONFIG_DIR
// points elsewhere.
func configDirectory() (string, error) {
	if dir := os.Getenv("IMAGE_VIEWER_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	return os.Getwd()
}
