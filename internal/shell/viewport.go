package shell

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	// DefaultViewportWidth is assumed when the client sends no width hint
	DefaultViewportWidth = 1280
	// MobileViewportWidth is assumed for clients that only say they are mobile
	MobileViewportWidth = 375

	maxViewportWidth = 16384
)

// Viewport resolves the client's viewport width in CSS pixels from, in order,
// the vw query parameter, the viewport width client hints and the mobile hint
func Viewport(r *http.Request) int {
	if w, ok := parseWidth(r.URL.Query().Get("vw")); ok {
		return w
	}
	for _, header := range []string{"Sec-CH-Viewport-Width", "Viewport-Width"} {
		if w, ok := parseWidth(r.Header.Get(header)); ok {
			return w
		}
	}
	if strings.TrimSpace(r.Header.Get("Sec-CH-UA-Mobile")) == "?1" {
		return MobileViewportWidth
	}
	return DefaultViewportWidth
}

func parseWidth(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	w, err := strconv.Atoi(raw)
	if err != nil || w <= 0 || w > maxViewportWidth {
		return 0, false
	}
	return w, true
}
