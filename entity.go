package stripe

import "github.com/google/uuid"

// Entity ties a shape descriptor to an identity, a manual visibility
// switch, and an availability window.
type Entity struct {
	// ID uniquely names the entity. Geometry instances carry it as a
	// non-owning back-reference.
	ID uuid.UUID

	// Name is a human-readable label. It does not need to be unique.
	Name string

	// Show is the manual visibility switch for the whole entity.
	Show bool

	// Availability restricts when the entity exists. Empty means always
	// available.
	Availability []Interval

	// Stripe is the shape the entity displays.
	Stripe *ShapeDescriptor

	rev uint64
}

// NewEntity creates a visible entity with a fresh random ID.
func NewEntity(name string) *Entity {
	return &Entity{ID: uuid.New(), Name: name, Show: true}
}

// Available reports whether the entity exists at t.
func (e *Entity) Available(t Time) bool {
	if len(e.Availability) == 0 {
		return true
	}
	for _, iv := range e.Availability {
		if iv.Contains(t) {
			return true
		}
	}
	return false
}

// MarkChanged records that the descriptor (or the entity itself) was
// edited. The scene re-examines the entity on its next update.
func (e *Entity) MarkChanged() { e.rev++ }

// Revision returns the current edit counter.
func (e *Entity) Revision() uint64 { return e.rev }
