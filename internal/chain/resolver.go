// Package chain computes the minimum number of human presses needed to drive
// a button transition through a chain of directional-keypad relays. The
// recursion is additive over consecutive button pairs: a controller's cursor
// must physically travel from the last button it pressed to the next one, so
// the cost of a sequence is the sum of the costs of its transitions one
// level down. Memoization keeps the depth-25 case (~10^14 presses) tractable.
package chain

import (
	"context"
	"sync"
	"time"

	"svw.info/keypad/internal/domain"
	"svw.info/keypad/internal/layout"
	"svw.info/keypad/internal/paths"
	"svw.info/keypad/internal/ports"
)

// cacheKey identifies one memoized transition. The layout is omitted on
// purpose: the numeric pad only ever appears at the topmost depth, the two
// alphabets share only Activate, and (A, A) costs 1 at every depth on both
// layouts, so no two distinct values ever collide on a key.
type cacheKey struct {
	depth    int
	from, to domain.Button
}

// Resolver memoizes transition costs across calls. Safe for concurrent use;
// a racing duplicate computation stores the same value twice, which is
// wasteful but never wrong.
type Resolver struct {
	mu    sync.Mutex
	cache map[cacheKey]int
}

func New() *Resolver {
	return &Resolver{cache: make(map[cacheKey]int)}
}

// tally accumulates per-call statistics without touching shared state.
type tally struct {
	expansions int
	hits       int
}

// KeyPresses returns the minimum bottom-level presses needed to type keys on
// l and confirm each one, with depth directional keypads relaying in between.
// The cursor starts on Activate and every key press ends on the key itself,
// so the cost is summed over the Activate-bracketed pair windows.
func (r *Resolver) KeyPresses(ctx context.Context, l *layout.Layout, keys []domain.Button, depth int) (int, ports.Stats, error) {
	start := time.Now()
	var t tally
	total := 0
	prev := domain.KeyActivate
	for _, b := range keys {
		if err := ctx.Err(); err != nil {
			return 0, r.stats(&t, start), err
		}
		total += r.minPresses(l, prev, b, depth, &t)
		prev = b
	}
	total += r.minPresses(l, prev, domain.KeyActivate, depth, &t)
	return total, r.stats(&t, start), nil
}

// MinPresses exposes the cost of a single transition: move from one button
// to another, then press it.
func (r *Resolver) MinPresses(l *layout.Layout, from, to domain.Button, depth int) int {
	var t tally
	return r.minPresses(l, from, to, depth, &t)
}

func (r *Resolver) minPresses(l *layout.Layout, from, to domain.Button, depth int, t *tally) int {
	key := cacheKey{depth: depth, from: from, to: to}
	r.mu.Lock()
	cached, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		t.hits++
		return cached
	}
	t.expansions++

	var best int
	if depth == 0 {
		// Operated directly by human fingers: order is irrelevant, every
		// move costs one press, plus one for Activate.
		best = l.CoordinateOf(from).DistanceTo(l.CoordinateOf(to)) + 1
	} else {
		for _, seq := range paths.Shortest(l, from, to) {
			cost := r.sequencePresses(seq, depth-1, t)
			if best == 0 || cost < best {
				best = cost
			}
		}
	}

	r.mu.Lock()
	r.cache[key] = best
	r.mu.Unlock()
	return best
}

// sequencePresses costs driving a directional controller from Activate
// through seq and back onto Activate to confirm.
func (r *Resolver) sequencePresses(seq []domain.Button, depth int, t *tally) int {
	total := 0
	prev := domain.KeyActivate
	for _, b := range seq {
		total += r.minPresses(layout.Directional, prev, b, depth, t)
		prev = b
	}
	total += r.minPresses(layout.Directional, prev, domain.KeyActivate, depth, t)
	return total
}

// Size returns the number of memoized transitions.
func (r *Resolver) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

func (r *Resolver) stats(t *tally, start time.Time) ports.Stats {
	return ports.Stats{Expansions: t.expansions, CacheHits: t.hits, Duration: time.Since(start)}
}
