package components

import "testing"

func TestSelectionNextWraps(t *testing.T) {
	tests := []struct {
		name   string
		start  Selection
		length int
		want   int
	}{
		{"unset selects first", Selection{}, 3, 0},
		{"advances", Selected(0), 3, 1},
		{"wraps from last", Selected(2), 3, 0},
		{"single item stays", Selected(0), 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := tt.start
			sel.Next(tt.length)
			got, ok := sel.Index()
			if !ok || got != tt.want {
				t.Fatalf("Next(%d) = (%d, %v), want %d", tt.length, got, ok, tt.want)
			}
		})
	}
}

func TestSelectionPreviousWraps(t *testing.T) {
	tests := []struct {
		name   string
		start  Selection
		length int
		want   int
	}{
		{"unset selects first", Selection{}, 3, 0},
		{"retreats", Selected(2), 3, 1},
		{"wraps from first", Selected(0), 3, 2},
		{"stale index lands on last", Selected(7), 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := tt.start
			sel.Previous(tt.length)
			got, ok := sel.Index()
			if !ok || got != tt.want {
				t.Fatalf("Previous(%d) = (%d, %v), want %d", tt.length, got, ok, tt.want)
			}
		})
	}
}

func TestSelectionEmptyLengthClears(t *testing.T) {
	sel := Selected(4)
	sel.Next(0)
	if _, ok := sel.Index(); ok {
		t.Fatal("Next(0) should leave nothing selected")
	}
	sel = Selected(4)
	sel.Previous(0)
	if _, ok := sel.Index(); ok {
		t.Fatal("Previous(0) should leave nothing selected")
	}
}

func TestSelectionRoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for i := 0; i < n; i++ {
			sel := Selected(i)
			sel.Next(n)
			sel.Previous(n)
			if got, _ := sel.Index(); got != i {
				t.Fatalf("n=%d i=%d: next then previous = %d", n, i, got)
			}
			sel.Previous(n)
			sel.Next(n)
			if got, _ := sel.Index(); got != i {
				t.Fatalf("n=%d i=%d: previous then next = %d", n, i, got)
			}
		}
	}
}

func TestSelectionCycleReturnsToStart(t *testing.T) {
	const n = 4
	sel := Selected(1)
	for i := 0; i < n; i++ {
		sel.Next(n)
	}
	if got, _ := sel.Index(); got != 1 {
		t.Fatalf("after %d Next calls got %d, want 1", n, got)
	}
}

func TestSelectionReset(t *testing.T) {
	sel := Selected(3)
	sel.Reset(2)
	if got, ok := sel.Index(); !ok || got != 0 {
		t.Fatalf("Reset(2) = (%d, %v), want 0", got, ok)
	}
	sel.Reset(0)
	if _, ok := sel.Index(); ok {
		t.Fatal("Reset(0) should clear the selection")
	}
}

func TestCurrent(t *testing.T) {
	items := []string{"a", "b"}
	if got, ok := Current(Selected(1), items); !ok || got != "b" {
		t.Fatalf("Current = (%q, %v)", got, ok)
	}
	if _, ok := Current(Selected(2), items); ok {
		t.Fatal("out of range selection should resolve to nothing")
	}
	if _, ok := Current(Selection{}, items); ok {
		t.Fatal("unset selection should resolve to nothing")
	}
	if _, ok := Current(Selected(0), []string(nil)); ok {
		t.Fatal("empty items should resolve to nothing")
	}
}
