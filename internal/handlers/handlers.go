// SPDX-License-Identifier: MIT

// Package handlers serves the chat shell pages, the mode toggle and the JSON API.
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DefaultPopularLimit is how many servers the popular list shows
const DefaultPopularLimit = 10

// IconsPath is where stored category and server icons are served from
const IconsPath = "/media/icons"

// Handlers holds what the request handlers share
type Handlers struct {
	DB            *gorm.DB
	Logger        *slog.Logger
	IconsDir      string
	SecureCookies bool
	PopularLimit  int
}

// New creates the handlers with default settings
func New(database *gorm.DB, logger *slog.Logger, iconsDir string) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		DB:           database,
		Logger:       logger,
		IconsDir:     iconsDir,
		PopularLimit: DefaultPopularLimit,
	}
}

// Health reports liveness
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "djchat"})
}

// NotFound answers unmatched routes: JSON under /api, the themed page elsewhere
func (h *Handlers) NotFound(c *gin.Context) {
	path := c.Request.URL.Path
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	h.notFoundPage(c)
}

func iconURL(name string) string {
	if name == "" {
		return ""
	}
	return IconsPath + "/" + name
}
