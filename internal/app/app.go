package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/internal/config"
	"github.com/khrees2412/jobdesk/internal/crawler"
	"github.com/khrees2412/jobdesk/internal/logging"
	"github.com/khrees2412/jobdesk/internal/pages"
	"github.com/khrees2412/jobdesk/internal/pipeline"
	"github.com/khrees2412/jobdesk/internal/render"
	"github.com/khrees2412/jobdesk/internal/ui"
	"github.com/khrees2412/jobdesk/internal/web"
	"github.com/sirupsen/logrus"
)

// App is the dependency container shared by the CLI commands and the web server
type App struct {
	Config     *config.Config
	Logger     *logrus.Logger
	HTTPClient *http.Client
	Client     *client.Client
	Renderer   *render.Renderer
	Document   *ui.Document
	Pipeline   *pipeline.Pipeline
	Loaders    *pages.Loaders
	Navigator  *pages.Navigator
	Registry   *crawler.Registry
	Crawler    *crawler.Controller
	Saver      *crawler.Saver
	Router     *gin.Engine
}

// NewApp loads the configuration at configPath (or the default location)
// and wires every component against it.
func NewApp(ctx context.Context, configPath string) (*App, error) {
	if err := config.Initialize(configPath); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return Build(ctx, config.AppConfig)
}

// Build wires an App from an already loaded configuration.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, ErrNotInitialized
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	api, err := client.New(cfg.APIBaseURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	renderer, err := render.New(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	registry, err := crawler.NewRegistry(cfg.Platforms)
	if err != nil {
		return nil, fmt.Errorf("invalid platforms: %w", err)
	}

	doc := ui.NewDocument()
	pipe := pipeline.New(api, renderer, logger)
	loaders := pages.NewLoaders(pipe, doc, pages.Limits{
		DashboardJobs:      cfg.DashboardJobs,
		DashboardFeedbacks: cfg.DashboardFeedbacks,
	})

	a := &App{
		Config:     cfg,
		Logger:     logger,
		HTTPClient: httpClient,
		Client:     api,
		Renderer:   renderer,
		Document:   doc,
		Pipeline:   pipe,
		Loaders:    loaders,
		Navigator:  pages.NewNavigator(doc, loaders, registry.Pages()...),
		Registry:   registry,
		Crawler:    crawler.NewController(registry, pipe, doc, cfg.TestURL),
		Saver:      crawler.NewSaver(api, renderer.Labels(), logger),
	}

	a.Router = web.NewRouter(&web.HTTPHandler{
		Doc:     a.Document,
		Render:  a.Renderer,
		Nav:     a.Navigator,
		Loaders: a.Loaders,
		Crawler: a.Crawler,
		Saver:   a.Saver,
		Log:     a.Logger,
	})

	logger.WithFields(logrus.Fields{
		"api":       api.BaseURL(),
		"locale":    renderer.Lang(),
		"platforms": len(registry.All()),
	}).Debug("app initialized")
	return a, nil
}

// Serve runs the web front end until ctx is cancelled.
func (a *App) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		addr = a.Config.ListenAddr
	}
	return web.Run(ctx, addr, a.Router, a.Logger)
}

// Close releases idle API connections
func (a *App) Close() error {
	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}
	return nil
}
