package object

import "fmt"

// table is a typed interning table: one per full-entity kind. Insert
// canonicalizes by the entity's formatted value, so inserting a value equal
// in every field to an already-stored entity returns the existing handle
// instead of minting a new one. This is what lets algorithms like Reverse
// round-trip back to the original handle (see P2 in the property tests)
// without the store needing bespoke equality code per entity kind.
type table[T any] struct {
	entities []T
	byKey    map[string]Handle[T]
}

func newTable[T any]() *table[T] {
	return &table[T]{byKey: make(map[string]Handle[T])}
}

// insert stores e, running validate (if non-nil) only when e isn't already
// present. On validation failure the entity is not stored and the zero
// Handle is returned alongside the error.
func (t *table[T]) insert(e T, validate func(T) error) (Handle[T], error) {
	key := fmt.Sprintf("%#v", e)
	if h, ok := t.byKey[key]; ok {
		return h, nil
	}
	if validate != nil {
		if err := validate(e); err != nil {
			return Handle[T]{}, err
		}
	}
	h := Handle[T]{id: uint64(len(t.entities)), minted: true}
	t.entities = append(t.entities, e)
	t.byKey[key] = h
	return h, nil
}

func (t *table[T]) get(h Handle[T]) T {
	return t.entities[h.id]
}

// all returns the table's entities in insertion order, paired with their
// handles, for iteration by algorithms and exporters.
func (t *table[T]) all() []struct {
	Handle Handle[T]
	Entity T
} {
	out := make([]struct {
		Handle Handle[T]
		Entity T
	}, len(t.entities))
	for i, e := range t.entities {
		out[i].Handle = Handle[T]{id: uint64(i), minted: true}
		out[i].Entity = e
	}
	return out
}
