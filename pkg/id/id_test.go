package id

import (
	"sort"
	"testing"
)

func TestNextMonotonic(t *testing.T) {
	g := NewGenerator()
	prev := g.Next()
	for i := 0; i < 1000; i++ {
		next := g.Next()
		if next.String() <= prev.String() {
			t.Fatalf("ids not strictly increasing: %s then %s", prev, next)
		}
		prev = next
	}
}

func TestClockBackwards(t *testing.T) {
	g := NewGenerator()
	orig := NowMs
	now := int64(1_000_000)
	NowMs = func() int64 { return now }
	defer func() { NowMs = orig }()

	a := g.Next()
	now = 999_999 // clock steps back
	b := g.Next()
	if b.String() <= a.String() {
		t.Fatalf("expected ordering despite clock regression: %s then %s", a, b)
	}
}

func TestStringSortable(t *testing.T) {
	g := NewGenerator()
	var ids []string
	for i := 0; i < 100; i++ {
		ids = append(ids, g.Next().String())
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("hex encoding not sortable")
	}
}
