package cost

import (
	"context"
	"testing"
	"time"

	"svw.info/keypad/internal/chain"
	"svw.info/keypad/internal/domain"
)

func exampleCodes(t *testing.T) []domain.Code {
	t.Helper()
	codes, err := domain.ParseCodes("029A\n980A\n179A\n456A\n379A\n")
	if err != nil {
		t.Fatalf("ParseCodes: %v", err)
	}
	return codes
}

func TestPressesShortChain(t *testing.T) {
	c := NewCalculator(chain.New())
	codes := exampleCodes(t)
	want := []int{68, 60, 68, 64, 64}
	for i, code := range codes {
		n, _, err := c.Presses(context.Background(), code, 2)
		if err != nil {
			t.Fatalf("Presses(%s): %v", code.Text, err)
		}
		if n != want[i] {
			t.Fatalf("Presses(%s) at depth 2 = %d, want %d", code.Text, n, want[i])
		}
	}
}

func TestComplexityShortChain(t *testing.T) {
	c := NewCalculator(chain.New())
	got, _, err := c.Complexity(context.Background(), exampleCodes(t), 2)
	if err != nil {
		t.Fatalf("Complexity: %v", err)
	}
	if got != 126384 {
		t.Fatalf("complexity at depth 2 = %d, want 126384", got)
	}
}

// Depth 25 is only feasible with the memoized resolver; the timeout doubles
// as a regression check that caching stays effective.
func TestComplexityLongChain(t *testing.T) {
	c := NewCalculator(chain.New())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	got, st, err := c.Complexity(ctx, exampleCodes(t), 25)
	if err != nil {
		t.Fatalf("Complexity: %v (expansions=%d hits=%d dur=%v)", err, st.Expansions, st.CacheHits, st.Duration)
	}
	if got != 154115708116294 {
		t.Fatalf("complexity at depth 25 = %d, want 154115708116294", got)
	}
	if st.CacheHits == 0 {
		t.Fatalf("no cache hits at depth 25; memoization is not working")
	}
}

// A shared resolver keeps its cache across calculator calls, so a repeat of
// the long chain resolves almost entirely from cache.
func TestSharedResolverReusesCache(t *testing.T) {
	r := chain.New()
	c := NewCalculator(r)
	codes := exampleCodes(t)
	if _, _, err := c.Complexity(context.Background(), codes, 25); err != nil {
		t.Fatalf("first run: %v", err)
	}
	_, st, err := c.Complexity(context.Background(), codes, 25)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if st.Expansions != 0 {
		t.Fatalf("second run expanded %d transitions, want 0", st.Expansions)
	}
}
