package themectx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/thatcatcamp/djchat/internal/colormode"
	"github.com/thatcatcamp/djchat/internal/themes"
)

func newContext(persisted string) (*Context, *colormode.MemoryPersister) {
	p := colormode.NewMemoryPersister(persisted)
	store := colormode.New(p, colormode.NoPreference{})
	return New(store, themes.NewFactory(themes.DefaultPalette)), p
}

func TestContextDerivesBundleFromMode(t *testing.T) {
	ctx, _ := newContext("dark")

	if diff := cmp.Diff(themes.BuildStyleBundle(colormode.Dark), ctx.Bundle()); diff != "" {
		t.Errorf("bundle mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleRederivesAndPropagates(t *testing.T) {
	ctx, p := newContext("light")

	var seen []colormode.Mode
	ctx.Subscribe(func(b themes.StyleBundle) { seen = append(seen, b.Mode) })
	ctx.Subscribe(func(b themes.StyleBundle) { seen = append(seen, b.Mode) })

	ctx.Toggle()

	if len(seen) != 2 || seen[0] != colormode.Dark || seen[1] != colormode.Dark {
		t.Fatalf("every subscriber should see dark in the same cycle, got %v", seen)
	}
	if ctx.Bundle().Mode != colormode.Dark {
		t.Errorf("bundle not rebuilt, mode %s", ctx.Bundle().Mode)
	}
	if value, _ := p.Load(); value != "dark" {
		t.Errorf("persisted %q, want dark", value)
	}
}

func TestBundleCannotBeMutatedByCallers(t *testing.T) {
	ctx, _ := newContext("light")

	b := ctx.Bundle()
	b.PrimaryAppBar.Height = 999
	b.Palette.Background = "#ff0000"

	if ctx.Bundle().PrimaryAppBar.Height != 50 {
		t.Error("caller mutation leaked into the context")
	}
	if ctx.Bundle().Palette.Background == "#ff0000" {
		t.Error("caller mutation leaked into the palette")
	}
}

func TestCloseStopsFollowingStore(t *testing.T) {
	store := colormode.New(colormode.NewMemoryPersister("light"), colormode.NoPreference{})
	ctx := New(store, themes.NewFactory(themes.DefaultPalette))
	ctx.Close()

	store.Toggle()

	if ctx.Bundle().Mode != colormode.Light {
		t.Error("closed context should not follow the store")
	}
}

func TestMiddlewareReadsCookieAndHint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		cookie string
		hint   string
		want   colormode.Mode
	}{
		{name: "cookie dark", cookie: "dark", hint: "light", want: colormode.Dark},
		{name: "hint dark", hint: "dark", want: colormode.Dark},
		{name: "nothing", want: colormode.Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Middleware(themes.NewFactory("blue"), false, nil))

			var got colormode.Mode
			r.GET("/", func(c *gin.Context) {
				got = FromGin(c).Bundle().Mode
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest("GET", "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: colormode.StorageKey, Value: tt.cookie})
			}
			if tt.hint != "" {
				req.Header.Set(colormode.ClientHintHeader, tt.hint)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if got != tt.want {
				t.Errorf("mode = %s, want %s", got, tt.want)
			}
			if !strings.Contains(w.Header().Get("Set-Cookie"), colormode.StorageKey+"="+tt.want.String()) {
				t.Errorf("expected mode cookie to be written, got %q", w.Header().Get("Set-Cookie"))
			}
		})
	}
}

func TestFromGinWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if FromGin(c).Mode() != colormode.Light {
		t.Error("fallback context should be light")
	}
}
