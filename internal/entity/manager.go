// Package entity stores heterogeneous game objects in a single arena and
// keeps a per-kind index so games can iterate one kind without scanning
// everything.
//
// Entities are never removed immediately. Games mark them destroyed during a
// frame and call Refresh once, after all logic ran and before drawing, so
// same-frame logic still sees them but they are never drawn again.
package entity

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Kind identifies the concrete variant of an entity.
// Games declare their own kinds as small consecutive integers.
type Kind uint8

// Entity is a game object owned by a Manager.
type Entity interface {
	// Kind returns the entity's variant. It must not depend on receiver
	// state: Manager calls it on zero values to resolve typed lookups.
	Kind() Kind
	Update()
	Draw(c *core.Canvas)
	Destroyed() bool
}

// Base carries the destroyed flag shared by every entity.
type Base struct {
	destroyed bool
}

// Destroy marks the entity for removal at the next Refresh.
func (b *Base) Destroy() {
	b.destroyed = true
}

// Destroyed reports whether the entity is pending removal.
func (b *Base) Destroyed() bool {
	return b.destroyed
}

// Manager owns every entity for its whole lifetime.
type Manager struct {
	entities []Entity
	groups   [][]Entity // indexed by Kind
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add registers e in the arena and in its kind group.
func (m *Manager) Add(e Entity) {
	k := int(e.Kind())
	for len(m.groups) <= k {
		m.groups = append(m.groups, nil)
	}
	m.groups[k] = append(m.groups[k], e)
	m.entities = append(m.entities, e)
}

// Group returns the tracked entities of kind k in insertion order.
// The slice is owned by the manager and is only valid until the next
// Add, Refresh or Clear.
func (m *Manager) Group(k Kind) []Entity {
	if int(k) >= len(m.groups) {
		return nil
	}
	return m.groups[k]
}

// Count returns how many entities of kind k are tracked.
func (m *Manager) Count(k Kind) int {
	return len(m.Group(k))
}

// Len returns the number of tracked entities of all kinds.
func (m *Manager) Len() int {
	return len(m.entities)
}

// Entities returns every tracked entity in insertion order.
func (m *Manager) Entities() []Entity {
	return m.entities
}

// Update calls Update on every entity in insertion order.
func (m *Manager) Update() {
	for _, e := range m.entities {
		e.Update()
	}
}

// Draw calls Draw on every entity in insertion order.
func (m *Manager) Draw(c *core.Canvas) {
	for _, e := range m.entities {
		e.Draw(c)
	}
}

// Refresh drops destroyed entities from the arena and from every group.
// Survivors keep their relative order.
func (m *Manager) Refresh() {
	for k := range m.groups {
		m.groups[k] = compact(m.groups[k])
	}
	m.entities = compact(m.entities)
}

// Clear removes every entity.
func (m *Manager) Clear() {
	clear(m.entities)
	m.entities = m.entities[:0]
	for k := range m.groups {
		clear(m.groups[k])
		m.groups[k] = m.groups[k][:0]
	}
}

// compact filters destroyed entities in place.
func compact(list []Entity) []Entity {
	kept := list[:0]
	for _, e := range list {
		if !e.Destroyed() {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}

// Create registers e and returns it with its concrete type.
func Create[T Entity](m *Manager, e T) T {
	m.Add(e)
	return e
}

// All returns the tracked entities of type T in insertion order.
func All[T Entity](m *Manager) []T {
	group := m.Group(kindOf[T]())
	out := make([]T, 0, len(group))
	for _, e := range group {
		out = append(out, e.(T))
	}
	return out
}

// ForEach calls fn for every tracked entity of type T in insertion order.
// fn may mutate the entity but must not add entities or call Refresh.
func ForEach[T Entity](m *Manager, fn func(T)) {
	for _, e := range m.Group(kindOf[T]()) {
		fn(e.(T))
	}
}

// CountOf returns how many entities of type T are tracked.
func CountOf[T Entity](m *Manager) int {
	return m.Count(kindOf[T]())
}

func kindOf[T Entity]() Kind {
	var zero T
	return zero.Kind()
}
