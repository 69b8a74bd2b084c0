// Package pubsite serves a read-only preview of a blog's site configuration
// built with Go, Echo, and templ: the rendered head, header and footer, plus
// JSON views of the public configuration.
//
// The configuration itself lives in package site and is passed in
// explicitly; nothing here mutates it.
package pubsite

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pubsite/site"
)

// App is the preview application. It wires the configuration table into
// handlers, middleware, and views.
type App struct {
	Site   *site.Config
	Config ServerConfig
	Echo   *echo.Echo

	ogImage      ImageInfo
	customRoutes []func(*App)
	now          func() time.Time
}

// New creates a preview App for cfg.
func New(cfg *site.Config, scfg ServerConfig, opts ...Option) *App {
	scfg.setDefaults()

	a := &App{
		Site:   cfg,
		Config: scfg,
		Echo:   echo.New(),
		now:    time.Now,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start sets up middleware and routes and runs the server until it fails.
func (a *App) Start() error {
	if a.Site == nil {
		return fmt.Errorf("pubsite: site config is required")
	}
	a.setup()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// setup probes the og image and registers middleware and routes.
func (a *App) setup() {
	ogPath := filepath.Join(a.Config.StaticDir, a.Site.Site().OGImage)
	if info, err := ProbeImage(ogPath); err != nil {
		a.Echo.Logger.Warnf("og image: %v", err)
	} else {
		a.ogImage = info
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/assets", filepath.Join(a.Config.StaticDir, "assets"))
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/", a.handleHome)
	e.GET("/api/config", a.handleConfig)
	e.GET("/api/socials", a.handleSocials)
}

// Close releases server resources.
func (a *App) Close() error {
	return a.Echo.Close()
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
