package style

import "encoding/json"

// PropertyKind is the CSS-style property lifecycle state, spec.md §3.3:
// an explicit value, an explicit "inherit" from the parent, or "unset"
// (which resolves to inherited for inheritable properties and to the
// initial value otherwise).
type PropertyKind uint8

const (
	PropertyUnset PropertyKind = iota
	PropertyInherit
	PropertyValue
)

// Property is a single CSS-like property slot carrying its lifecycle
// state alongside a concrete value of type T. Grounded on takumi's
// node/mod.rs inherit_style merge semantics, reimplemented as a Go
// generic since Rust's derive(Merge) has no direct analogue.
type Property[T any] struct {
	Kind  PropertyKind
	Value T
}

// Set returns a Property in the explicit-value state.
func Set[T any](v T) Property[T] {
	return Property[T]{Kind: PropertyValue, Value: v}
}

// Resolve returns the effective value: the explicit value if set, the
// inherited value if Kind is Inherit or (when inheritable) Unset,
// otherwise the initial value.
func (p Property[T]) Resolve(inherited T, initial T, inheritable bool) T {
	switch p.Kind {
	case PropertyValue:
		return p.Value
	case PropertyInherit:
		return inherited
	default: // PropertyUnset
		if inheritable {
			return inherited
		}
		return initial
	}
}

// IsSet reports whether the property carries an explicit value (as
// opposed to inherit/unset).
func (p Property[T]) IsSet() bool { return p.Kind == PropertyValue }

// unmarshalPropertyKeyword reports whether data is one of the two
// lifecycle keyword strings "inherit"/"unset", and which PropertyKind it
// names. The field decoders in decode.go call it first and fall back to
// decoding an explicit value when it reports false.
func unmarshalPropertyKeyword(data []byte) (PropertyKind, bool) {
	var kw string
	if err := json.Unmarshal(data, &kw); err != nil {
		return 0, false
	}
	switch kw {
	case "inherit":
		return PropertyInherit, true
	case "unset":
		return PropertyUnset, true
	}
	return 0, false
}
