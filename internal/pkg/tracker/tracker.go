// Package tracker records which aggregate fields changed so repositories can
// build minimal update mutations.
package tracker

// ChangeTracker tracks dirty fields by name.
type ChangeTracker struct {
	dirty map[string]bool
}

// NewChangeTracker creates a tracker with a clean slate.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirty: make(map[string]bool),
	}
}

// MarkDirty flags a field as changed.
func (t *ChangeTracker) MarkDirty(field string) {
	t.dirty[field] = true
}

// Dirty reports whether a field changed.
func (t *ChangeTracker) Dirty(field string) bool {
	return t.dirty[field]
}

// HasChanges reports whether any field changed.
func (t *ChangeTracker) HasChanges() bool {
	return len(t.dirty) > 0
}

// Reset clears all dirty flags.
func (t *ChangeTracker) Reset() {
	t.dirty = make(map[string]bool)
}
