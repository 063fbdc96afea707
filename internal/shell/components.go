package shell

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/thatcatcamp/djchat/internal/themectx"
	"github.com/thatcatcamp/djchat/internal/themes"
	. "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ToggleModePath receives the dark mode switch form
const ToggleModePath = "/mode/toggle"

// Props is what every shell component renders from
type Props struct {
	Theme     *themectx.Context
	Layout    Layout
	Path      string
	Query     url.Values
	CSRFToken string
}

// CategoryItem is one entry of the secondary drawer
type CategoryItem struct {
	Name        string
	Description string
	Icon        string
}

// ChannelItem is one entry of the popular channels list
type ChannelItem struct {
	ID       uint
	Name     string
	Category string
	Members  int64
	Icon     string
}

// AppBar is the fixed bar across the top of every page
func AppBar(p Props) Node {
	return h.Header(
		h.Class("app-bar"),
		h.Style(fmt.Sprintf("z-index:%d", p.Layout.AppBar.ZIndex)),
		If(p.Layout.Compact,
			h.A(
				h.Class("icon-button menu-button"),
				h.Href(p.withQuery(QueryParam, Open.String())),
				h.Aria("label", "open drawer"),
				icon("menu", iconMenu, 24),
			),
		),
		h.A(h.Href("/"), h.Class("brand typo-h6"), Text("DJCHAT")),
		h.Div(h.Class("spacer")),
		AccountButton(p),
	)
}

// AccountButton shows the account icon with a menu holding the mode switch
func AccountButton(p Props) Node {
	return h.Details(
		h.Class("account-menu"),
		h.Summary(h.Class("icon-button"), h.Aria("label", "account"), icon("account", iconAccountCircle, 24)),
		h.Div(
			h.Class("menu"),
			h.Div(
				h.Class("menu-item"),
				icon("brightness", iconBrightness4, 20),
				DarkModeSwitch(p),
			),
		),
	)
}

// DarkModeSwitch posts to the toggle endpoint and comes back to this page
func DarkModeSwitch(p Props) Node {
	dark := p.Theme.Mode().IsDark()
	label := "Dark mode off"
	if dark {
		label = "Dark mode on"
	}

	return h.Form(
		h.Method("post"),
		h.Action(ToggleModePath),
		h.Input(h.Type("hidden"), h.Name("csrf_token"), h.Value(p.CSRFToken)),
		h.Input(h.Type("hidden"), h.Name("return_to"), h.Value(p.currentURL())),
		h.Button(
			h.Type("submit"),
			h.Class("switch"),
			h.Role("switch"),
			h.Aria("checked", strconv.FormatBool(dark)),
			Text(label),
		),
	)
}

// PrimaryDraw is the collapsible left drawer
func PrimaryDraw(p Props, children ...Node) Node {
	return h.Nav(
		h.Class(drawerClass(p.Layout.Primary)),
		h.ID("primary-draw"),
		h.Style(regionStyle(p.Layout.PrimaryDraw)),
		DrawToggle(p),
		Group(children),
	)
}

// DrawToggle flips the primary drawer through the page URL
func DrawToggle(p Props) Node {
	open := bool(p.Layout.Primary)
	label := "open drawer"
	chevron := icon("chevron-left", iconChevronLeft, 24)
	if open {
		label = "close drawer"
		chevron = icon("chevron-right", iconChevronRight, 24)
	}

	return h.Div(
		h.Class("drawer-toggle"),
		h.A(
			h.Class("icon-button"),
			h.Href(p.withQuery(QueryParam, p.Layout.Primary.Toggled().String())),
			h.Aria("label", label),
			chevron,
		),
	)
}

// SecondaryDraw lists the categories to explore
func SecondaryDraw(p Props, categories []CategoryItem) Node {
	items := make([]Node, 0, len(categories))
	for _, cat := range categories {
		items = append(items, h.Li(
			h.A(
				h.Class("list-item"),
				h.Href("/explore/"+url.PathEscape(cat.Name)),
				avatar(cat.Name, cat.Icon),
				h.Span(h.Class("label typo-body1"), Text(cat.Name)),
			),
		))
	}

	return h.Aside(
		h.Class("drawer"),
		h.ID("secondary-draw"),
		h.Style(regionStyle(p.Layout.SecondaryDraw)),
		h.Div(h.Class("section-title typo-h6"), Text("Explore")),
		If(len(items) == 0, h.P(h.Class("section-title text-muted typo-body2"), Text("No categories yet"))),
		h.Ul(h.Class("list"), Group(items)),
	)
}

// Main is the content region right of the drawers
func Main(p Props, children ...Node) Node {
	return h.Section(
		h.Class("main"),
		h.ID("main"),
		h.Style(regionStyle(p.Layout.Main)),
		Group(children),
	)
}

// PopularChannels lists the most joined servers inside the primary drawer
func PopularChannels(p Props, channels []ChannelItem) Node {
	items := make([]Node, 0, len(channels))
	for _, ch := range channels {
		items = append(items, h.Li(
			h.Div(
				h.Class("list-item"),
				h.Title(ch.Name),
				avatar(ch.Name, ch.Icon),
				h.Span(
					h.Class("label"),
					h.Div(h.Class("typo-body2"), Text(ch.Name)),
					h.Div(h.Class("typo-caption text-muted"), Text(ch.Category)),
				),
			),
		))
	}

	return Group{
		h.Div(h.Class("section-title typo-h6"), Text("Popular")),
		h.Ul(h.Class("list"), h.ID("popular-channels"), Group(items)),
	}
}

// Document wraps a page body in the themed HTML document
func Document(p Props, title string, body ...Node) Node {
	b := p.Theme.Bundle()
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Data("color-mode", b.Mode.String()),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("color-scheme"), h.Content(b.Mode.String())),
				h.TitleEl(Text(title+" | DJCHAT")),
				h.Link(h.Rel("icon"), h.Href("data:,")),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
				h.Link(h.Rel("stylesheet"), h.Href("https://fonts.googleapis.com/css2?family=IBM+Plex+Sans:wght@300;400;500;700&display=swap")),
				h.StyleEl(Raw(themes.GenerateCSS(b))),
			),
			h.Body(Group(body)),
		),
	)
}

// Page assembles the full shell: app bar, both drawers and main
func Page(p Props, title string, primary, secondary, main Node) Node {
	return Document(p, title,
		h.Div(
			h.Class("shell"),
			AppBar(p),
			PrimaryDraw(p, primary),
			secondary,
			Main(p, main),
		),
	)
}

func (p Props) currentURL() string {
	path := p.Path
	if path == "" {
		path = "/"
	}
	if len(p.Query) == 0 {
		return path
	}
	return path + "?" + p.Query.Encode()
}

func (p Props) withQuery(key, value string) string {
	q := url.Values{}
	for k, v := range p.Query {
		q[k] = append([]string(nil), v...)
	}
	q.Set(key, value)

	path := p.Path
	if path == "" {
		path = "/"
	}
	return path + "?" + q.Encode()
}

func drawerClass(state DrawerState) string {
	if state {
		return "drawer"
	}
	return "drawer is-closed"
}

func regionStyle(r Region) string {
	s := fmt.Sprintf("width:%dpx", r.Width)
	if r.ZIndex != 0 {
		s += fmt.Sprintf(";z-index:%d", r.ZIndex)
	}
	return s
}

func avatar(name, iconPath string) Node {
	if iconPath != "" {
		return h.Img(h.Class("avatar"), h.Src(iconPath), h.Alt(name))
	}
	initial := "?"
	if name != "" {
		initial = strings.ToUpper(string([]rune(name)[:1]))
	}
	return h.Span(h.Class("avatar"), Text(initial))
}
