package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/djchat/internal/themectx"
	"github.com/thatcatcamp/djchat/internal/themes"
)

// ToggleMode flips the display mode and sends the browser back to the page
// it came from
func (h *Handlers) ToggleMode(c *gin.Context) {
	theme := themectx.FromGin(c)
	mode := theme.Toggle()

	h.Logger.Debug("color mode toggled", "mode", mode.String())
	c.Redirect(http.StatusSeeOther, safeReturnTo(c.PostForm("return_to")))
}

// ThemeJSON returns the current style bundle
func (h *Handlers) ThemeJSON(c *gin.Context) {
	c.JSON(http.StatusOK, themectx.FromGin(c).Bundle())
}

// ThemeCSS returns the stylesheet for the current mode
func (h *Handlers) ThemeCSS(c *gin.Context) {
	css := themes.GenerateCSS(themectx.FromGin(c).Bundle())
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

// safeReturnTo accepts only same-site relative paths
func safeReturnTo(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return u.RequestURI()
}
