package main

import (
	"fmt"
	"log"
	"runtime"

	"image-compressor/internal/codec"
	"image-compressor/internal/config"
	"image-compressor/internal/controllers"
	"image-compressor/internal/logger"
	"image-compressor/internal/pipeline"
	"image-compressor/internal/services"
	"image-compressor/internal/shutdown"
	"image-compressor/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Application owns the Fyne app and the MVC components.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	controller *controllers.MainController
	view       *views.MainView
	service    *services.CompressionService
	pipeline   *pipeline.Pipeline
	shutdown   *shutdown.Manager
}

func main() {
	application, err := NewApplication()
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.shutdown.Listen(func() {
		fyne.Do(application.fyneApp.Quit)
	})
	application.Run()
}

// NewApplication creates and wires every component.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger := logger.NewConsoleLogger(logger.LevelFromEnvironment(logger.ParseLevel(cfg.LogLevel)))

	imageCodec, err := codec.New(cfg.Codec.Backend, cfg.Codec.Downscale, cfg.Codec.Upscale)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	fyneApp := app.NewWithID(config.AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      config.AppID,
		Name:    config.AppName,
		Version: config.AppVersion,
	})

	window := fyneApp.NewWindow(config.AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	appLogger.Info("Application", "application starting", map[string]interface{}{
		"version":     config.AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"go_version":  runtime.Version(),
		"codec":       imageCodec.Name(),
		"downscale":   cfg.Codec.Downscale,
		"upscale":     cfg.Codec.Upscale,
	})

	p := pipeline.New(imageCodec, appLogger, pipeline.WithDefaultExtension(cfg.Output.DefaultExtension))
	service := services.NewCompressionService(p, appLogger, cfg.Quality.NormalizedDefault())

	view := views.NewMainView(window, views.QualityRange{
		Min:     cfg.Quality.Min,
		Max:     cfg.Quality.Max,
		Default: cfg.Quality.Default,
		Step:    cfg.Quality.Step,
	})
	controller := controllers.NewMainController(service, cfg, appLogger, fyne.Do)
	controller.SetMainView(view)

	shutdownManager := shutdown.NewManager(appLogger, shutdown.DefaultTimeout)
	shutdownManager.Register(controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: controller,
		view:       view,
		service:    service,
		pipeline:   p,
		shutdown:   shutdownManager,
	}

	window.SetOnClosed(application.performCleanup)

	return application, nil
}

// Run shows the window and blocks until the app quits.
func (a *Application) Run() {
	a.view.Show()
	a.fyneApp.Run()
}

func (a *Application) performCleanup() {
	a.shutdown.Shutdown()

	stats := a.service.Stats()
	fields := map[string]interface{}{
		"compressions": stats.Compressions,
		"coalesced":    stats.Coalesced,
		"failures":     stats.Failures,
	}
	for _, op := range a.pipeline.Timings().Operations() {
		fields[op+"_avg_ms"] = a.pipeline.Timings().Stats(op).Average.Milliseconds()
	}
	a.logger.Info("Application", "application closed", fields)
}
