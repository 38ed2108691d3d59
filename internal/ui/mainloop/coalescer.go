// Package mainloop schedules work onto the GTK main loop.
package mainloop

import "sync"

// Coalescer merges bursts of same-key main-loop tasks: while a key is
// queued, later posts replace its callback instead of queuing again.
type Coalescer struct {
	mu        sync.Mutex
	queued    map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer that schedules through post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		queued: make(map[string]func()),
		post:   post,
	}
}

// Post schedules fn under key. Only the latest fn for a key runs.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, already := c.queued[key]
	c.queued[key] = fn
	c.mu.Unlock()

	if already {
		return
	}
	c.post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.queued[key]
	delete(c.queued, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if ok && !destroyed {
		fn()
	}
}

// Pending returns the number of keys waiting to run.
func (c *Coalescer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queued)
}

// Destroy drops queued work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.queued = map[string]func(){}
	c.mu.Unlock()
}
