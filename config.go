package portfolio

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Owner name for JSON-LD

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/portfolio.db")

	AdminEmail    string // Required: admin login email
	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	// CloudinaryURL enables hosted blob storage for uploads; when empty,
	// files are processed and written under the static directory instead.
	CloudinaryURL string

	ContentCacheTTL time.Duration // Public content cache TTL (default 5min)
	BlogPageSize    int           // Posts per "load more" page (default 6)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/portfolio.db"
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = 5 * time.Minute
	}
	if c.BlogPageSize == 0 {
		c.BlogPageSize = 6
	}
}

// LoadDotenv loads environment variables from the given .env files (default
// ".env"). A missing file is not an error so the same binary runs unchanged
// in environments that configure the process directly.
func LoadDotenv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
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

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithFileStore overrides the file storage backend, bypassing the
// CloudinaryURL/local-disk selection.
func WithFileStore(fs FileStore) Option {
	return func(a *App) {
		a.Files = fs
	}
}
