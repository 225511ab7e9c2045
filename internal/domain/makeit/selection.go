// Package makeit implements the Make-It engine: the variant resolver and
// step assembler that turn a framework, a chosen variant and the caller's
// ingredient selection into the ordered cooking-flow step sequence.
package makeit

import "github.com/platewise/v1/internal/domain/catalog"

// Selection is the caller-owned ordered collection of chosen ingredients.
// The engine never holds a live reference to it: Assemble takes a snapshot
// so the pipeline stays pure and callers re-run it whenever the selection
// changes.
type Selection struct {
	items []catalog.Ingredient
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Append adds an ingredient to the end of the selection.
func (s *Selection) Append(ing catalog.Ingredient) {
	s.items = append(s.items, ing)
}

// InsertAt inserts an ingredient at the given index. Out-of-range indices
// clamp to the nearest end.
func (s *Selection) InsertAt(index int, ing catalog.Ingredient) {
	if index < 0 {
		index = 0
	}
	if index >= len(s.items) {
		s.items = append(s.items, ing)
		return
	}
	s.items = append(s.items[:index], append([]catalog.Ingredient{ing}, s.items[index:]...)...)
}

// Remove deletes the first ingredient with the given id, reporting whether
// anything was removed.
func (s *Selection) Remove(id string) bool {
	for i, ing := range s.items {
		if ing.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.items = s.items[:0]
}

// Len returns the number of selected ingredients.
func (s *Selection) Len() int {
	return len(s.items)
}

// Contains reports whether an ingredient with the given id is selected.
func (s *Selection) Contains(id string) bool {
	for _, ing := range s.items {
		if ing.ID == id {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current selection in order. Mutating the
// selection afterwards does not affect a snapshot already handed out.
func (s *Selection) Snapshot() []catalog.Ingredient {
	out := make([]catalog.Ingredient, len(s.items))
	copy(out, s.items)
	return out
}
