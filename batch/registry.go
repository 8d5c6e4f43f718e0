package batch

import "sync"

// Registry tracks in-flight batch requests and their cancellation flags.
// All methods are safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	active map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{active: make(map[string]bool)}
}

// Begin registers a request id and returns its release function.
// Beginning an id again resets a stale cancellation flag. After release
// the id is unknown again, so a late Cancel reports false.
func (r *Registry) Begin(id string) func() {
	r.mu.Lock()
	r.active[id] = false
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.active, id)
		r.mu.Unlock()
	}
}

// Cancel flags a request for cancellation and reports whether the id was
// registered at the time of the call.
func (r *Registry) Cancel(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.active[id]; !ok {
		return false
	}
	r.active[id] = true
	return true
}

// Cancelled reports whether the request has been flagged. Unknown ids
// report false.
func (r *Registry) Cancelled(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active[id]
}
