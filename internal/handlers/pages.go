package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/djchat/internal/middleware"
	"github.com/thatcatcamp/djchat/internal/servers"
	"github.com/thatcatcamp/djchat/internal/shell"
	"github.com/thatcatcamp/djchat/internal/themectx"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Home renders the landing page: popular servers in the primary drawer,
// categories in the secondary drawer
func (h *Handlers) Home(c *gin.Context) {
	p := h.props(c)

	main := Group{
		H1(Class("typo-h4"), Text("Welcome to DJCHAT")),
		P(Class("typo-body1 text-muted"), Text("Pick a category to explore servers, or jump into a popular one.")),
	}

	h.render(c, http.StatusOK, shell.Page(p, "Home",
		shell.PopularChannels(p, h.popular(c)),
		shell.SecondaryDraw(p, h.categories(c)),
		main,
	))
}

// Explore renders the servers of one category. Unknown categories give an
// empty list, not an error.
func (h *Handlers) Explore(c *gin.Context) {
	p := h.props(c)
	categoryName := c.Param("categoryName")

	listings, err := servers.List(h.DB, servers.Query{Category: categoryName, WithNumMembers: true}, nil)
	if err != nil {
		h.Logger.Error("failed to list servers", "category", categoryName, "error", err)
		listings = nil
	}

	cards := make([]Node, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, serverCard(l))
	}

	main := Group{
		H1(Class("typo-h4"), Text(categoryName)),
		If(len(cards) == 0, P(Class("typo-body1 text-muted"), Text("No servers in this category yet."))),
		Div(ID("servers"), Group(cards)),
	}

	h.render(c, http.StatusOK, shell.Page(p, categoryName,
		shell.PopularChannels(p, h.popular(c)),
		shell.SecondaryDraw(p, h.categories(c)),
		main,
	))
}

func (h *Handlers) notFoundPage(c *gin.Context) {
	p := h.props(c)

	main := Group{
		H1(Class("typo-h4"), Text("Page not found")),
		P(Class("typo-body1 text-muted"), Text("There is nothing at "+c.Request.URL.Path+".")),
		A(Href("/"), Class("typo-button"), Text("Back home")),
	}

	h.render(c, http.StatusNotFound, shell.Page(p, "Not found",
		shell.PopularChannels(p, nil),
		shell.SecondaryDraw(p, h.categories(c)),
		main,
	))
}

func serverCard(l servers.Listing) Node {
	members := ""
	if l.NumMembers != nil {
		members = fmt.Sprintf("%d members", *l.NumMembers)
	}

	return Div(
		Class("card"),
		Div(
			Class("list-item"),
			avatarFor(l.Name, l.Icon),
			Div(
				Div(Class("typo-h6"), Text(l.Name)),
				Div(Class("typo-caption text-muted"), Text(members)),
			),
		),
		If(l.Description != "", P(Class("typo-body2"), Text(l.Description))),
	)
}

func avatarFor(name, icon string) Node {
	if icon != "" {
		return Img(Class("avatar"), Src(iconURL(icon)), Alt(name))
	}
	initial := "?"
	if r := []rune(name); len(r) > 0 {
		initial = string(r[0])
	}
	return Span(Class("avatar"), Text(initial))
}

// props builds the shell props for this request from its theme context,
// viewport hints and drawer query parameter
func (h *Handlers) props(c *gin.Context) shell.Props {
	theme := themectx.FromGin(c)
	bundle := theme.Bundle()

	vw := shell.Viewport(c.Request)
	primary := shell.DrawerFromQuery(c.Query(shell.QueryParam), shell.InitialPrimary(vw, bundle.Breakpoints))

	return shell.Props{
		Theme:     theme,
		Layout:    shell.ComputeLayout(bundle, primary, vw),
		Path:      c.Request.URL.Path,
		Query:     c.Request.URL.Query(),
		CSRFToken: middleware.GetCSRFToken(c),
	}
}

func (h *Handlers) categories(c *gin.Context) []shell.CategoryItem {
	cats, err := servers.ListCategories(h.DB)
	if err != nil {
		h.Logger.Error("failed to list categories", "error", err, "request_id", middleware.GetRequestID(c))
		return nil
	}

	items := make([]shell.CategoryItem, 0, len(cats))
	for _, cat := range cats {
		items = append(items, shell.CategoryItem{
			Name:        cat.Name,
			Description: cat.Description,
			Icon:        iconURL(cat.Icon),
		})
	}
	return items
}

func (h *Handlers) popular(c *gin.Context) []shell.ChannelItem {
	listings, err := servers.Popular(h.DB, h.PopularLimit)
	if err != nil {
		h.Logger.Error("failed to rank servers", "error", err, "request_id", middleware.GetRequestID(c))
		return nil
	}

	items := make([]shell.ChannelItem, 0, len(listings))
	for _, l := range listings {
		var members int64
		if l.NumMembers != nil {
			members = *l.NumMembers
		}
		items = append(items, shell.ChannelItem{
			ID:       l.ID,
			Name:     l.Name,
			Category: l.Category,
			Members:  members,
			Icon:     iconURL(l.Icon),
		})
	}
	return items
}

func (h *Handlers) render(c *gin.Context, status int, page Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := page.Render(c.Writer); err != nil {
		h.Logger.Error("failed to render page", "path", c.Request.URL.Path, "error", err)
	}
}
