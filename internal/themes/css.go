// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateCSS renders a bundle as CSS variables plus the shell's base styles
func GenerateCSS(b StyleBundle) string {
	var sb strings.Builder
	c := b.Palette

	fmt.Fprintf(&sb, `:root {
  color-scheme: %s;
  --color-primary: %s;
  --color-primary-light: %s;
  --color-primary-dark: %s;
  --color-primary-contrast: %s;
  --color-secondary: %s;
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
  --color-action-hover: %s;
  --color-success: %s;
  --color-error: %s;
  --color-warning: %s;
  --font-family: %s;
  --app-bar-height: %dpx;
  --primary-draw-width: %dpx;
  --primary-draw-closed: %dpx;
  --secondary-draw-width: %dpx;
  --z-drawer: %d;
  --z-app-bar: %d;
}
`, b.Mode.String(), c.Primary, c.PrimaryLight, c.PrimaryDark, c.PrimaryContrast,
		c.Secondary, c.Background, c.Surface, c.Text, c.TextMuted, c.Border,
		c.ActionHover, c.Success, c.Error, c.Warning, b.Typography.FontFamily,
		b.PrimaryAppBar.Height, b.PrimaryDraw.Width, b.PrimaryDraw.Closed,
		b.SecondaryDraw.Width, b.ZIndex.Drawer, b.ZIndex.AppBar)

	sb.WriteString(baseCSS)
	writeTypographyCSS(&sb, b)

	return sb.String()
}

func writeTypographyCSS(sb *strings.Builder, b StyleBundle) {
	t := b.Typography
	fmt.Fprintf(sb, "html { font-size: %dpx; }\n", t.HTMLFontSize)

	for _, v := range t.Variants {
		fmt.Fprintf(sb, ".typo-%s { font-weight: %d; line-height: %s; letter-spacing: %s; font-size: %srem; }\n",
			v.Name, v.FontWeight, formatFloat(v.LineHeight), v.LetterSpacing, formatFloat(v.Sizes[0]))
	}

	stops := [3]int{b.Breakpoints.SM, b.Breakpoints.MD, b.Breakpoints.LG}
	for i, stop := range stops {
		fmt.Fprintf(sb, "@media (min-width: %dpx) {\n", stop)
		for _, v := range t.Variants {
			if !v.Responsive {
				continue
			}
			fmt.Fprintf(sb, "  .typo-%s { font-size: %srem; }\n", v.Name, formatFloat(v.Sizes[i+1]))
		}
		sb.WriteString("}\n")
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

const baseCSS = `
*, *::before, *::after { box-sizing: border-box; }

body {
  margin: 0;
  font-family: var(--font-family);
  background-color: var(--color-bg);
  color: var(--color-text);
}

a {
  color: var(--color-primary);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

.shell { display: flex; }

.app-bar {
  position: fixed;
  top: 0;
  left: 0;
  right: 0;
  height: var(--app-bar-height);
  z-index: var(--z-app-bar);
  display: flex;
  align-items: center;
  padding: 0 16px;
  background-color: var(--color-bg);
  border-bottom: 1px solid var(--color-border);
}

.app-bar .brand {
  color: var(--color-text);
  font-weight: 700;
  letter-spacing: -0.5px;
  white-space: nowrap;
}

.app-bar .menu-button { margin-right: 16px; }
.app-bar .spacer { flex-grow: 1; }

.drawer {
  flex-shrink: 0;
  margin-top: var(--app-bar-height);
  height: calc(100vh - var(--app-bar-height));
  overflow-x: hidden;
  overflow-y: auto;
  z-index: var(--z-drawer);
  background-color: var(--color-surface);
  border-right: 1px solid var(--color-border);
}

.drawer-toggle {
  height: var(--app-bar-height);
  display: flex;
  align-items: center;
  justify-content: right;
  padding: 0 8px;
}

.icon-button {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  width: 40px;
  height: 40px;
  border: none;
  border-radius: 50%;
  background: transparent;
  color: inherit;
  cursor: pointer;
}

.icon-button:hover { background-color: var(--color-action-hover); }

.main {
  flex-grow: 1;
  margin-top: var(--app-bar-height);
  padding: 16px;
  overflow: hidden;
}

.list { list-style: none; margin: 0; padding: 0; }

.list-item {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 8px 16px;
  color: var(--color-text);
}

.list-item:hover {
  background-color: var(--color-action-hover);
  text-decoration: none;
}

.avatar {
  width: 32px;
  height: 32px;
  border-radius: 50%;
  flex-shrink: 0;
  display: inline-flex;
  align-items: center;
  justify-content: center;
  background-color: var(--color-primary);
  color: var(--color-primary-contrast);
}

.is-closed .list-item .label,
.is-closed .section-title { display: none; }

.section-title {
  padding: 8px 16px;
  color: var(--color-text-muted);
}

.account-menu {
  position: relative;
}

.account-menu .menu {
  position: absolute;
  right: 0;
  top: 44px;
  min-width: 200px;
  padding: 8px 0;
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: 4px;
}

.account-menu .menu-item {
  display: flex;
  align-items: center;
  gap: 6px;
  padding: 6px 16px;
}

.switch {
  border: 1px solid var(--color-border);
  background-color: var(--color-surface);
  color: var(--color-text);
  border-radius: 12px;
  padding: 2px 10px;
  cursor: pointer;
}

.card {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: 8px;
  padding: 16px;
  margin-bottom: 12px;
}

.text-muted { color: var(--color-text-muted); }
`
