package display

import (
	"slices"
	"testing"
)

func TestArenaReusesLowestID(t *testing.T) {
	var a Arena[string]
	for i, name := range []string{"a", "b", "c", "d"} {
		if id := a.Add(name); id != i {
			t.Fatalf("Add(%q) = %d, want %d", name, id, i)
		}
	}

	a.Delete(3)
	a.Delete(1)
	if id := a.Add("e"); id != 1 {
		t.Errorf("first reuse = %d, want 1", id)
	}
	if id := a.Add("f"); id != 3 {
		t.Errorf("second reuse = %d, want 3", id)
	}
	if id := a.Add("g"); id != 4 {
		t.Errorf("fresh id = %d, want 4", id)
	}

	if got, want := a.IDs(), []int{0, 2, 1, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
	if s, ok := a.Get(1); !ok || s != "e" {
		t.Errorf("Get(1) = %q, %v", s, ok)
	}
}

func TestArenaDelete(t *testing.T) {
	var a Arena[int]
	a.Add(10)
	a.Add(11)

	if a.Delete(5) || a.Delete(-1) {
		t.Errorf("Delete of unknown id reported success")
	}
	if !a.Delete(0) {
		t.Fatalf("Delete(0) failed")
	}
	if a.Delete(0) {
		t.Errorf("second Delete(0) reported success")
	}
	if _, ok := a.Get(0); ok {
		t.Errorf("Get(0) found a deleted object")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}

	a.Clear()
	if id := a.Add(12); id != 0 {
		t.Errorf("Add after Clear = %d, want 0", id)
	}
}

func TestArenaAllFollowsInsertionOrder(t *testing.T) {
	var a Arena[string]
	a.Add("x")
	a.Add("y")
	a.Add("z")
	a.Delete(0)
	a.Add("w") // reuses id 0 but is drawn last

	var got []string
	for _, s := range a.All() {
		got = append(got, s)
	}
	if want := []string{"y", "z", "w"}; !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}
