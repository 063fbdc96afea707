// SPDX-License-Identifier: MIT
package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/djchat/internal/media"
)

// ServeIcon serves a stored category or server icon
func (h *Handlers) ServeIcon(c *gin.Context) {
	// Only bare file names are valid; anything with a path is rejected
	filename := strings.TrimPrefix(c.Param("filename"), "/")
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		h.NotFound(c)
		return
	}
	if media.ValidateImageExtension(filename) != nil {
		h.NotFound(c)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.File(filepath.Join(h.IconsDir, filename))
}
