// SPDX-License-Identifier: MIT

// Package themectx carries the current style bundle and the mode toggle to
// every component of a page. Components receive the *Context explicitly
// through their props; nothing looks it up implicitly.
package themectx

import (
	"sync"

	"github.com/thatcatcamp/djchat/internal/colormode"
	"github.com/thatcatcamp/djchat/internal/themes"
)

// Context supplies { current bundle, toggle } to the component tree
type Context struct {
	store   *colormode.Store
	factory themes.Factory

	mu          sync.RWMutex
	bundle      themes.StyleBundle
	nextID      int
	subs        []subscriber
	unsubscribe func()
}

type subscriber struct {
	id int
	fn func(themes.StyleBundle)
}

// New derives the bundle for the store's current mode and follows the store
// from then on
func New(store *colormode.Store, factory themes.Factory) *Context {
	ctx := &Context{
		store:   store,
		factory: factory,
		bundle:  factory.Build(store.Mode()),
	}
	ctx.unsubscribe = store.Subscribe(ctx.onModeChange)
	return ctx
}

func (c *Context) onModeChange(mode colormode.Mode) {
	bundle := c.factory.Build(mode)

	c.mu.Lock()
	c.bundle = bundle
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, sub := range subs {
		sub.fn(bundle)
	}
}

// Bundle returns a copy of the current bundle
func (c *Context) Bundle() themes.StyleBundle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bundle
}

// Mode returns the current display mode
func (c *Context) Mode() colormode.Mode {
	return c.store.Mode()
}

// Toggle flips the display mode. The store persists it, then this context
// rebuilds the bundle and notifies its subscribers, all before Toggle returns.
func (c *Context) Toggle() colormode.Mode {
	return c.store.Toggle()
}

// Subscribe registers fn for bundle changes
func (c *Context) Subscribe(fn func(themes.StyleBundle)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.subs {
			if sub.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Close detaches the context from its store
func (c *Context) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
