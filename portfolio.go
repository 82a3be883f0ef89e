// Package portfolio is a personal portfolio engine built with Go, Echo, and
// templ. It provides a public site (hero, about, skills, projects, blog,
// contact) plus an admin dashboard with session auth, file uploads, RSS,
// and a sitemap out of the box.
//
// Users provide their own templ components via the ViewFuncs struct, and
// portfolio handles the handler logic, middleware, storage, and dashboard
// state management.
package portfolio

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// HomeContent bundles everything the home page renders.
type HomeContent struct {
	Hero       HeroData
	About      AboutData
	Settings   SiteSettings
	Skills     []Skill
	Projects   []Project
	Posts      []BlogPost
	ActiveTag  string
	Tags       []string
	HasMore    bool
	NextOffset int
}

// DashboardView is the snapshot the admin dashboard template renders from.
type DashboardView struct {
	Hero     *HeroData
	About    *AboutData
	Settings *SiteSettings
	Skills   []Skill
	Projects []Project
	Posts    []BlogPost
	Messages []ContactSubmission
	Notice   Notifications
}

// ViewFuncs holds user-provided templ components that the engine calls when
// rendering pages. This is the inversion-of-control mechanism that lets
// users own and customize all templates.
type ViewFuncs struct {
	Home           func(cfg SiteConfig, content HomeContent) templ.Component
	HomePartial    func(cfg SiteConfig, content HomeContent) templ.Component
	BlogSection    func(posts []BlogPost, activeTag string, tags []string, hasMore bool, nextOffset int) templ.Component
	Post           func(cfg SiteConfig, post BlogPost, related []BlogPost) templ.Component
	PostPartial    func(cfg SiteConfig, post BlogPost, related []BlogPost) templ.Component
	ContactResult  func(success bool, message string) templ.Component
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(cfg SiteConfig, state DashboardView, csrfToken string) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App is the central portfolio application. It wires together the store,
// services, dashboard controller, cache, file storage, middleware, and
// user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *ContentCache
	Svc    *Services
	Dash   *Dashboard
	Notify *NotificationCenter
	Files  FileStore
	Views  ViewFuncs

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a portfolio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, cache, dashboard, middleware, and routes,
// then starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.AdminEmail == "" {
		return fmt.Errorf("portfolio: AdminEmail is required")
	}
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("portfolio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("portfolio: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("portfolio: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewContentCache(a.Store, a.Config.ContentCacheTTL)
	a.Svc = NewServices(a.Store)
	a.Notify = NewNotificationCenter(DefaultSuccessTTL, DefaultErrorTTL)
	a.Dash = NewDashboard(a.Svc, a.Notify, a.Cache.Invalidate)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Files == nil {
		if a.Config.CloudinaryURL != "" {
			files, err := NewCloudinaryFileStore(a.Config.CloudinaryURL)
			if err != nil {
				return fmt.Errorf("portfolio: init cloudinary: %w", err)
			}
			a.Files = files
		} else {
			a.Files = NewLocalFileStore(a.staticDir, "/uploads")
		}
	}

	// Warm the dashboard once at startup; partial failure is tolerated and
	// surfaces as a banner on first admin render.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := a.Dash.LoadAll(ctx); err != nil {
		a.Echo.Logger.Warnf("dashboard warm load: %v", err)
	}
	cancel()

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Static assets
	e.Static("/public", a.staticDir)
	e.Static("/uploads", a.staticDir+"/uploads")
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/blog/:slug/", a.handlePost)
	e.POST("/contact/", a.handleContactSubmit)

	// Admin pages
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)

	// Admin JSON API, mirroring the dashboard controller
	api := e.Group("/admin/api", requireAdmin)

	api.GET("/hero", a.handleHeroGet)
	api.PUT("/hero", a.handleHeroSave)
	api.GET("/about", a.handleAboutGet)
	api.PUT("/about", a.handleAboutSave)
	api.GET("/settings", a.handleSettingsGet)
	api.PUT("/settings", a.handleSettingsSave)

	api.GET("/skills", a.handleSkillList)
	api.POST("/skills", a.handleSkillAdd)
	api.PUT("/skills/:id", a.handleSkillUpdate)
	api.DELETE("/skills/:id", a.handleSkillDelete)

	api.GET("/projects", a.handleProjectList)
	api.POST("/projects", a.handleProjectAdd)
	api.PUT("/projects/:id", a.handleProjectUpdate)
	api.DELETE("/projects/:id", a.handleProjectDelete)

	api.GET("/posts", a.handlePostList)
	api.POST("/posts", a.handlePostAdd)
	api.PUT("/posts/:id", a.handlePostUpdate)
	api.DELETE("/posts/:id", a.handlePostDelete)

	api.GET("/messages", a.handleMessageList)
	api.POST("/messages/:id/read", a.handleMessageRead)
	api.POST("/messages/:id/replied", a.handleMessageReplied)
	api.DELETE("/messages/:id", a.handleMessageDelete)

	api.GET("/files", a.handleFileList)
	api.POST("/files", a.handleFileUpload)
	api.DELETE("/files", a.handleFileDelete)

	api.GET("/notifications", a.handleNotifications)
	api.POST("/reload", a.handleReload)
}

// requireAdmin gates the JSON API on the admin session.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c) {
			return jsonError(c, &Error{Kind: KindPermission, Message: "authentication required"})
		}
		return next(c)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Notify != nil {
		a.Notify.Close()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
// This is a convenience function for use in scaffolded main.go files.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("portfolio: required environment variable %s is not set", key)
	}
	return v
}
