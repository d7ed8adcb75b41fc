package chain

import (
	"context"
	"testing"

	"svw.info/keypad/internal/domain"
	"svw.info/keypad/internal/layout"
)

func TestMinPressesSameButtonIsOne(t *testing.T) {
	r := New()
	for _, depth := range []int{0, 1, 2, 25} {
		if got := r.MinPresses(layout.Directional, domain.KeyActivate, domain.KeyActivate, depth); got != 1 {
			t.Fatalf("A -> A at depth %d = %d, want 1", depth, got)
		}
		if got := r.MinPresses(layout.Numeric, domain.Key5, domain.Key5, depth); got != 1 {
			t.Fatalf("5 -> 5 at depth %d = %d, want 1", depth, got)
		}
	}
}

// With no relays the cost of typing a code is just Manhattan travel plus one
// press per key: 029A takes 12 presses by hand.
func TestKeyPressesDirectEntry(t *testing.T) {
	r := New()
	code, err := domain.ParseCode("029A")
	if err != nil {
		t.Fatalf("ParseCode: %v", err)
	}
	got, _, err := r.KeyPresses(context.Background(), layout.Numeric, code.Buttons, 0)
	if err != nil {
		t.Fatalf("KeyPresses: %v", err)
	}
	if got != 12 {
		t.Fatalf("direct entry of 029A = %d, want 12", got)
	}
}

// Transition costs are not symmetric: with one relay, reaching < from A costs
// 10 presses but returning to A from < costs only 8, because the cheapest
// orderings differ around the gap.
func TestMinPressesAsymmetry(t *testing.T) {
	r := New()
	there := r.MinPresses(layout.Directional, domain.KeyActivate, domain.MoveLeft, 1)
	back := r.MinPresses(layout.Directional, domain.MoveLeft, domain.KeyActivate, 1)
	if there != 10 {
		t.Fatalf("A -> < at depth 1 = %d, want 10", there)
	}
	if back != 8 {
		t.Fatalf("< -> A at depth 1 = %d, want 8", back)
	}
}

func TestMinPressesIdempotent(t *testing.T) {
	r := New()
	first := r.MinPresses(layout.Numeric, domain.Key1, domain.Key9, 3)
	second := r.MinPresses(layout.Numeric, domain.Key1, domain.Key9, 3)
	if first != second {
		t.Fatalf("repeated call changed the answer: %d vs %d", first, second)
	}
	if r.Size() == 0 {
		t.Fatalf("cache is empty after resolving")
	}
}

// The total for a code must equal the sum of its Activate-bracketed pair
// transitions, so the implicit leading and trailing Activate are costed the
// same way interior transitions are.
func TestKeyPressesMatchesPairSum(t *testing.T) {
	r := New()
	code, err := domain.ParseCode("379A")
	if err != nil {
		t.Fatalf("ParseCode: %v", err)
	}
	depth := 2
	total, _, err := r.KeyPresses(context.Background(), layout.Numeric, code.Buttons, depth)
	if err != nil {
		t.Fatalf("KeyPresses: %v", err)
	}
	sum := 0
	prev := domain.KeyActivate
	for _, b := range code.Buttons {
		sum += r.MinPresses(layout.Numeric, prev, b, depth)
		prev = b
	}
	sum += r.MinPresses(layout.Numeric, prev, domain.KeyActivate, depth)
	if total != sum {
		t.Fatalf("KeyPresses = %d but pair sum = %d", total, sum)
	}
}

func TestKeyPressesHonorsContext(t *testing.T) {
	r := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	code, _ := domain.ParseCode("029A")
	if _, _, err := r.KeyPresses(ctx, layout.Numeric, code.Buttons, 2); err == nil {
		t.Fatalf("expected error from canceled context")
	}
}
