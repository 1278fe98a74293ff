// Register of weakly held values. Entries never keep their target
// alive; expired entries are pruned lazily.
package evreg

import "weak"

// The zero register is empty and ready for use.
type Register[T any] struct {
	v []weak.Pointer[T]
}

//----------

// Returns false if p is nil or already registered.
func (reg *Register[T]) Add(p *T) bool {
	if p == nil {
		return false
	}
	for _, w := range reg.v {
		if w.Value() == p {
			return false
		}
	}
	reg.v = append(reg.v, weak.Make(p))
	return true
}

// Removes every entry resolving to p, as well as every expired entry.
// Returns true if p was found.
func (reg *Register[T]) Remove(p *T) bool {
	if p == nil {
		return false
	}
	found := false
	u := reg.v[:0]
	for _, w := range reg.v {
		v := w.Value()
		if v == nil {
			continue
		}
		if v == p {
			found = true
			continue
		}
		u = append(u, w)
	}
	clear(reg.v[len(u):])
	reg.v = u
	return found
}

// Drops expired entries. Returns the number of dropped entries.
func (reg *Register[T]) Prune() int {
	u := reg.v[:0]
	for _, w := range reg.v {
		if w.Value() != nil {
			u = append(u, w)
		}
	}
	n := len(reg.v) - len(u)
	clear(reg.v[len(u):])
	reg.v = u
	return n
}

//----------

// Number of entries, including expired ones not yet pruned.
func (reg *Register[T]) Len() int {
	return len(reg.v)
}

// Snapshot of the live values in registration order.
func (reg *Register[T]) Values() []*T {
	u := make([]*T, 0, len(reg.v))
	for _, w := range reg.v {
		if v := w.Value(); v != nil {
			u = append(u, v)
		}
	}
	return u
}
