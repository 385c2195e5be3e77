package debounce

import (
	"sync"
	"time"
)

// Group multiplexes debouncing across string keys, holding at most one
// pending timer per key. It is used to coalesce revalidation bursts per
// form field while keeping independent fields independent.
type Group struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewGroup creates an empty Group.
func NewGroup() *Group {
	return &Group{timers: make(map[string]*time.Timer)}
}

// Call schedules fn for the given key after delay, cancelling any pending
// call for the same key. A zero (or negative) delay cancels the pending
// call and runs fn synchronously.
func (g *Group) Call(key string, delay time.Duration, fn func()) {
	if fn == nil {
		return
	}

	g.mu.Lock()
	if t, ok := g.timers[key]; ok {
		t.Stop()
		delete(g.timers, key)
	}
	if delay <= 0 {
		g.mu.Unlock()
		fn()
		return
	}
	g.timers[key] = time.AfterFunc(delay, func() {
		g.mu.Lock()
		delete(g.timers, key)
		g.mu.Unlock()
		fn()
	})
	g.mu.Unlock()
}

// Stop cancels the pending call for key, if any.
func (g *Group) Stop(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if t, ok := g.timers[key]; ok {
		t.Stop()
		delete(g.timers, key)
	}
}

// StopAll cancels every pending call. The Group remains usable afterwards.
func (g *Group) StopAll() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, t := range g.timers {
		t.Stop()
		delete(g.timers, key)
	}
}

// Len returns the number of keys with a pending call.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.timers)
}
