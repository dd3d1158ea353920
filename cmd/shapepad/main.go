package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"shapepad/internal/config"
	"shapepad/internal/controllers"
	"shapepad/internal/logger"
	"shapepad/internal/models"
	"shapepad/internal/services"
	"shapepad/internal/shutdown"
	"shapepad/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "ShapePad"
	AppID      = "io.github.shapepad"
	AppVersion = "1.0.0"
)

// Application owns the fyne app, the window and the MVC wiring
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to the TOML configuration file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config file] [file.txt]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := NewApplication(cfg)

	if path := flag.Arg(0); path != "" {
		application.controller.OpenPath(path)
	}

	application.Run()
}

// NewApplication builds the window and wires models, services, controller and view
func NewApplication(cfg config.Config) *Application {
	appLogger := newLogger(cfg.Logging)

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"go_version":  runtime.Version(),
		"log_level":   cfg.Logging.Level,
	})

	textFiles := services.NewTextFileService(cfg.Editor.DefaultExtension, appLogger)
	drawing := services.NewDrawingService(cfg.Canvas.StrokeWidth, cfg.Canvas.OvalSegments, appLogger)

	mainController := controllers.NewMainController(
		textFiles,
		drawing,
		models.NewThemeState(cfg.Theme.StartDark),
		appLogger,
		cfg.Window.Title,
	)
	mainView := views.NewMainView(window, cfg)

	mainController.SetMainView(mainView)
	mainView.SetActions(mainController)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: mainController,
		view:       mainView,
		shutdown:   shutdown.NewManager(appLogger),
	}
	application.shutdown.Register("controller", mainController)
	application.setupWindowEvents()

	return application
}

// Run shows the window and blocks until the app quits
func (a *Application) Run() {
	// a signal only stops the event loop; components shut down below, on
	// this goroutine, once no UI callback can touch them
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "terminated", nil)
}

// setupWindowEvents asks before closing a window with unsaved changes
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		if !a.controller.Document().Modified() {
			a.window.Close()
			return
		}

		a.view.ShowConfirm(
			"Exit Application",
			"The document has unsaved changes. Exit anyway?",
			func(confirmed bool) {
				if confirmed {
					a.window.Close()
				}
			},
		)
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})
}

func newLogger(cfg config.LoggingConfig) logger.Logger {
	level := logger.ParseLevel(cfg.Level)
	if cfg.Format == "json" {
		return logger.NewJSONLogger(level)
	}
	return logger.NewConsoleLogger(level)
}
