package style

import "testing"

func TestPropertyResolveExplicitValue(t *testing.T) {
	p := Set(10)
	if got := p.Resolve(5, 0, true); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
	if !p.IsSet() {
		t.Fatal("expected IsSet true for an explicit value")
	}
}

func TestPropertyResolveInherit(t *testing.T) {
	p := Property[int]{Kind: PropertyInherit}
	if got := p.Resolve(5, 0, false); got != 5 {
		t.Fatalf("got %d, want inherited 5", got)
	}
	if p.IsSet() {
		t.Fatal("expected IsSet false for an inherit property")
	}
}

func TestPropertyResolveUnsetInheritable(t *testing.T) {
	var p Property[int]
	if got := p.Resolve(5, 0, true); got != 5 {
		t.Fatalf("unset inheritable property should resolve to inherited, got %d", got)
	}
}

func TestPropertyResolveUnsetNonInheritable(t *testing.T) {
	var p Property[int]
	if got := p.Resolve(5, 0, false); got != 0 {
		t.Fatalf("unset non-inheritable property should resolve to initial, got %d", got)
	}
}

func TestUnmarshalPropertyKeyword(t *testing.T) {
	kind, ok := unmarshalPropertyKeyword([]byte(`"inherit"`))
	if !ok || kind != PropertyInherit {
		t.Fatalf("got (%v, %v), want (PropertyInherit, true)", kind, ok)
	}
	kind, ok = unmarshalPropertyKeyword([]byte(`"unset"`))
	if !ok || kind != PropertyUnset {
		t.Fatalf("got (%v, %v), want (PropertyUnset, true)", kind, ok)
	}
	if _, ok := unmarshalPropertyKeyword([]byte(`"red"`)); ok {
		t.Fatal("expected an arbitrary string to not be a lifecycle keyword")
	}
	if _, ok := unmarshalPropertyKeyword([]byte(`42`)); ok {
		t.Fatal("expected a bare number to not be a lifecycle keyword")
	}
}
