// Package surface models the named render targets of the dashboard page.
// Each load writes only to the target it owns; looking up a target that the
// page does not provide yields nil, and every operation on a nil target is a
// no-op, so an absent region degrades to a skipped render rather than an
// error.
package surface

import (
	"html"
	"sync"
)

// Sink receives target content updates, typically to push them to connected
// browsers. A nil sink is tolerated.
type Sink interface {
	SurfaceUpdated(id, html string)
}

// Registry holds the render targets declared by the page contract.
type Registry struct {
	mu      sync.RWMutex
	targets map[string]*Target
	sink    Sink
}

// NewRegistry creates a registry with the given declared target IDs.
func NewRegistry(sink Sink, ids ...string) *Registry {
	r := &Registry{
		targets: make(map[string]*Target, len(ids)),
		sink:    sink,
	}
	for _, id := range ids {
		r.Register(id)
	}
	return r
}

// Register declares a target and returns it. Re-registering an existing ID
// returns the existing target.
func (r *Registry) Register(id string) *Target {
	if r == nil || id == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.targets[id]; ok {
		return t
	}
	t := &Target{id: id, reg: r}
	r.targets[id] = t
	return t
}

// Lookup returns the target with the given ID, or nil when the page does not
// provide it.
func (r *Registry) Lookup(id string) *Target {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.targets[id]
}

// HTML returns the current content of a target, or "" when absent.
func (r *Registry) HTML(id string) string {
	return r.Lookup(id).HTML()
}

func (r *Registry) publish(id, content string) {
	if r == nil || r.sink == nil {
		return
	}
	r.sink.SurfaceUpdated(id, content)
}

// Target is one named render region. Content is replaced wholesale on every
// write; there is no partial update.
type Target struct {
	id   string
	reg  *Registry
	mu   sync.Mutex
	html string
}

// ID returns the target's identifier, or "" for a nil target.
func (t *Target) ID() string {
	if t == nil {
		return ""
	}
	return t.id
}

// SetHTML replaces the target's content with pre-rendered markup.
func (t *Target) SetHTML(content string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.html = content
	t.mu.Unlock()
	t.reg.publish(t.id, content)
}

// SetText replaces the target's content with escaped plain text.
func (t *Target) SetText(text string) {
	t.SetHTML(html.EscapeString(text))
}

// HTML returns the target's current content.
func (t *Target) HTML() string {
	if t == nil {
		return ""
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.html
}
