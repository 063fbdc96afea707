package themectx

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/djchat/internal/colormode"
	"github.com/thatcatcamp/djchat/internal/themes"
)

const contextKey = "theme"

// Middleware builds the per-request mode store (cookie persisted, client hint
// preference) and the theme context on top of it
func Middleware(factory themes.Factory, secureCookies bool, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := colormode.New(
			colormode.NewCookiePersister(c, secureCookies),
			colormode.ClientHintPreference{Header: c.Request.Header},
			colormode.WithLogger(logger),
		)

		themeCtx := New(store, factory)
		defer themeCtx.Close()

		c.Set(contextKey, themeCtx)
		c.Next()
	}
}

// FromGin returns the theme context set by Middleware. Requests that did not
// pass through it get a light, non-persisted context.
func FromGin(c *gin.Context) *Context {
	if v, ok := c.Get(contextKey); ok {
		if themeCtx, ok := v.(*Context); ok {
			return themeCtx
		}
	}
	store := colormode.New(colormode.NewMemoryPersister(""), colormode.NoPreference{})
	return New(store, themes.NewFactory(themes.DefaultPalette))
}
