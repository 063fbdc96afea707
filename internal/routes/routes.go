// Package routes maps URL paths to pages and assembles the HTTP engine
package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/djchat/internal/auth"
	"github.com/thatcatcamp/djchat/internal/handlers"
	"github.com/thatcatcamp/djchat/internal/middleware"
	"github.com/thatcatcamp/djchat/internal/shell"
	"github.com/thatcatcamp/djchat/internal/themectx"
	"github.com/thatcatcamp/djchat/internal/themes"
)

// Page names a rendered page
type Page string

const (
	Home     Page = "home"
	Explore  Page = "explore"
	NotFound Page = "not-found"
)

// Route binds a path pattern to a page
type Route struct {
	Pattern string
	Page    Page
	Handler func(*handlers.Handlers, *gin.Context)
}

// Table lists every page route. categoryName is passed through as an opaque
// string; any value matches.
var Table = []Route{
	{Pattern: "/", Page: Home, Handler: (*handlers.Handlers).Home},
	{Pattern: "/explore/:categoryName", Page: Explore, Handler: (*handlers.Handlers).Explore},
}

const (
	loginPath = "/api/token"
	apiPrefix = "/api/"
)

// Options configures the engine built by NewEngine
type Options struct {
	Factory       themes.Factory
	Logger        *slog.Logger
	SecureCookies bool
	BlockedIPs    []string
	LoginLimiter  *middleware.RateLimiter
	APILimiter    *middleware.RateLimiter
}

// NewEngine builds the gin engine with the full middleware chain and mounts
// every route
func NewEngine(h *handlers.Handlers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	// Match on the escaped path so a %2F inside categoryName stays one segment.
	// c.Param still returns the decoded value.
	r.UseRawPath = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeadersMiddleware(opts.SecureCookies))
	if len(opts.BlockedIPs) > 0 {
		r.Use(middleware.IPFilterMiddleware(opts.BlockedIPs))
	}
	if opts.LoginLimiter != nil {
		r.Use(middleware.RateLimitMiddleware(opts.LoginLimiter, loginPath))
	}
	if opts.APILimiter != nil {
		r.Use(middleware.RateLimitMiddleware(opts.APILimiter, apiPrefix))
	}
	r.Use(middleware.ClientHintsMiddleware())
	r.Use(middleware.CSRFMiddleware(opts.SecureCookies, apiPrefix))
	r.Use(themectx.Middleware(opts.Factory, opts.SecureCookies, logger))
	r.Use(auth.OptionalAuth(h.DB))

	h.SecureCookies = opts.SecureCookies
	Mount(r, h)
	return r
}

// Mount registers the page table, the mode toggle and the API on r
func Mount(r *gin.Engine, h *handlers.Handlers) {
	for _, route := range Table {
		r.GET(route.Pattern, bind(h, route.Handler))
	}

	r.POST(shell.ToggleModePath, h.ToggleMode)
	r.GET(handlers.IconsPath+"/*filename", h.ServeIcon)
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/theme", h.ThemeJSON)
		api.GET("/theme.css", h.ThemeCSS)
		api.GET("/server/select/", h.ServerList)
		api.GET("/server/category/", h.CategoryList)
		api.POST("/token", h.Login)
		api.POST("/logout", h.Logout)
		api.GET("/account/", auth.RequireAuth(), h.Account)
	}

	r.NoRoute(h.NotFound)
}

func bind(h *handlers.Handlers, fn func(*handlers.Handlers, *gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		fn(h, c)
	}
}
