package stamp

import "sync"

// Registry tracks every identifier already used within a processing scope:
// pre-existing ids found in documents plus ids assigned during the run.
// It is created at the start of a scope (one file, or the whole run) and
// discarded at its end; it is never a hidden global, so independent scopes
// can execute concurrently without cross-talk.
//
// Registry is safe for concurrent use. Claim performs check-and-insert under
// a single mutex, which is the coordination the run-wide scope needs when
// batch workers share one registry. For per-file scope the lock is
// uncontended and costs nothing measurable next to parsing.
type Registry struct {
	mu   sync.Mutex
	used map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{used: make(map[string]struct{})}
}

// Claim atomically records id as used. It returns true if the id was free
// and is now claimed by the caller, false if it was already taken.
func (r *Registry) Claim(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.used[id]; taken {
		return false
	}
	r.used[id] = struct{}{}
	return true
}

// Add records id as used regardless of whether it was already present.
// This is how pre-existing, hand-authored ids are seeded: duplicates among
// them are the document author's doing and are registered, not rejected.
func (r *Registry) Add(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.used[id] = struct{}{}
}

// Contains reports whether id is already used within the scope.
func (r *Registry) Contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, taken := r.used[id]
	return taken
}

// Len returns the number of distinct identifiers recorded.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.used)
}
