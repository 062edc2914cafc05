// Package mainloop funnels messages from background goroutines onto the UI loop.
package mainloop

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Coalescer merges bursts of same-key messages so the UI loop only sees the
// latest one of each burst.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	latest    map[string]tea.Msg
	post      func(deliver func() tea.Msg)
	destroyed bool
}

// NewCoalescer creates a coalescer. post schedules deliver to run later and
// forwards its non-nil result to the UI loop.
func NewCoalescer(post func(deliver func() tea.Msg)) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending: make(map[string]bool),
		latest:  make(map[string]tea.Msg),
		post:    post,
	}
}

// Post records msg as the latest for key and schedules a delivery if none is pending.
func (c *Coalescer) Post(key string, msg tea.Msg) {
	if msg == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.latest[key] = msg
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() tea.Msg {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.destroyed {
			return nil
		}
		msg := c.latest[key]
		delete(c.pending, key)
		delete(c.latest, key)
		return msg
	})
}

// Destroy drops pending messages and ignores further posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.latest = map[string]tea.Msg{}
	c.mu.Unlock()
}

// DelayedSend returns a post function that delivers through send after delay.
func DelayedSend(send func(tea.Msg), delay time.Duration) func(deliver func() tea.Msg) {
	return func(deliver func() tea.Msg) {
		time.AfterFunc(delay, func() {
			if msg := deliver(); msg != nil {
				send(msg)
			}
		})
	}
}
