package source

import "testing"

func TestInternerStable(t *testing.T) {
	in := NewInterner()
	a := in.Intern("main")
	b := in.Intern("x")
	if a == b || a == NoStringID {
		t.Fatalf("ids not distinct: %d %d", a, b)
	}
	if again := in.Intern("main"); again != a {
		t.Errorf("re-intern gave %d, want %d", again, a)
	}
	if in.Intern("") != NoStringID {
		t.Error("empty string must map to NoStringID")
	}
	if got := in.MustLookup(b); got != "x" {
		t.Errorf("MustLookup = %q", got)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Error("Lookup of unknown id succeeded")
	}
	if in.Len() != 3 {
		t.Errorf("Len = %d, want 3", in.Len())
	}
}
