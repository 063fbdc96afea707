// SPDX-License-Identifier: MIT
package colormode

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// StorageKey is the fixed key the mode is persisted under
const StorageKey = "colorMode"

// cookieMaxAge keeps the preference for a year
const cookieMaxAge = 365 * 24 * 60 * 60

// CookiePersister stores the mode in the browser's cookie jar. The cookie is
// readable by scripts so client code can avoid a flash of the wrong theme.
type CookiePersister struct {
	c      *gin.Context
	secure bool
}

// NewCookiePersister binds a persister to the request/response in c
func NewCookiePersister(c *gin.Context, secure bool) *CookiePersister {
	return &CookiePersister{c: c, secure: secure}
}

// Load reads the cookie from the request
func (p *CookiePersister) Load() (string, bool) {
	value, err := p.c.Cookie(StorageKey)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// Save writes the cookie to the response and to the request so later reads
// within the same request see the new value
func (p *CookiePersister) Save(value string) error {
	p.c.SetSameSite(http.SameSiteLaxMode)
	p.c.SetCookie(StorageKey, value, cookieMaxAge, "/", "", p.secure, false)
	replaceRequestCookie(p.c.Request, StorageKey, value)
	return nil
}

func replaceRequestCookie(r *http.Request, name, value string) {
	cookies := r.Cookies()
	r.Header.Del("Cookie")
	for _, ck := range cookies {
		if ck.Name == name {
			continue
		}
		r.AddCookie(ck)
	}
	r.AddCookie(&http.Cookie{Name: name, Value: value})
}

// MemoryPersister keeps the value in memory
type MemoryPersister struct {
	mu    sync.Mutex
	value string
	set   bool
}

// NewMemoryPersister returns a persister, optionally pre-seeded with value
func NewMemoryPersister(value string) *MemoryPersister {
	return &MemoryPersister{value: value, set: value != ""}
}

func (p *MemoryPersister) Load() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.set
}

func (p *MemoryPersister) Save(value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = value
	p.set = true
	return nil
}

// ClientHintHeader is the user-agent client hint carrying the colour-scheme
// preference
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// ClientHintPreference reads the preference from request headers
type ClientHintPreference struct {
	Header http.Header
}

func (p ClientHintPreference) PrefersDark() (bool, bool) {
	if p.Header == nil {
		return false, false
	}
	raw := strings.Trim(strings.TrimSpace(p.Header.Get(ClientHintHeader)), `"`)
	switch strings.ToLower(raw) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}

// StaticPreference is a fixed, known preference
type StaticPreference bool

func (p StaticPreference) PrefersDark() (bool, bool) {
	return bool(p), true
}

// NoPreference reports an environment without a colour-scheme preference
type NoPreference struct{}

func (NoPreference) PrefersDark() (bool, bool) {
	return false, false
}
