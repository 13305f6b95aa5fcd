// Package view owns the single active-section state machine. Exactly one
// section is visible at any time; entering a section dispatches its load
// action exactly once per activation, and leaving needs no teardown.
package view

import "sync"

// Section is one mutually-exclusive top-level view of the dashboard.
type Section string

const (
	SectionDashboard  Section = "dashboard"
	SectionPatients   Section = "patients"
	SectionQueue      Section = "queue"
	SectionSimulation Section = "simulation"
)

// Router tracks the active section and dispatches section-entry side effects.
// Navigation targets are fixed by the page markup, so activating an unknown
// section fails silently.
type Router struct {
	mu      sync.Mutex
	current Section
	known   map[Section]struct{}
	loads   map[Section]func()
	shown   func(Section)
}

// NewRouter creates a router over the given fixed set of sections.
func NewRouter(sections ...Section) *Router {
	r := &Router{
		known: make(map[Section]struct{}, len(sections)),
		loads: make(map[Section]func(), len(sections)),
	}
	for _, s := range sections {
		r.known[s] = struct{}{}
	}
	return r
}

// BindLoad attaches the load action dispatched on entry to a section.
// Re-binding replaces the previous action; loads never accumulate.
func (r *Router) BindLoad(s Section, load func()) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads[s] = load
}

// OnShow registers the hook that swaps the visible rendering surface when
// the active section changes.
func (r *Router) OnShow(fn func(Section)) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = fn
}

// Activate makes s the active section, swaps the visible surface, and
// dispatches the section's load action. Unknown sections are a no-op.
// Returns whether the section was activated.
func (r *Router) Activate(s Section) bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	if _, ok := r.known[s]; !ok {
		r.mu.Unlock()
		return false
	}
	r.current = s
	shown := r.shown
	load := r.loads[s]
	r.mu.Unlock()

	if shown != nil {
		shown(s)
	}
	if load != nil {
		load()
	}
	return true
}

// Current returns the active section.
func (r *Router) Current() Section {
	if r == nil {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
