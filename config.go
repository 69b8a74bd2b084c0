package pubsite

import "time"

// ServerConfig holds the runtime settings of the preview server.
type ServerConfig struct {
	Addr      string // Listen address (default ":4321")
	StaticDir string // Directory holding assets/ (default "public")
}

func (c *ServerConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":4321"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithClock overrides the time source used for footer years.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
