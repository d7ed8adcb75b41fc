// Package cost turns per-transition chain costs into per-code press totals
// and the aggregate complexity score.
package cost

import (
	"context"

	"svw.info/keypad/internal/chain"
	"svw.info/keypad/internal/domain"
	"svw.info/keypad/internal/layout"
	"svw.info/keypad/internal/ports"
)

// Calculator implements ports.Costing on top of a chain.Resolver.
type Calculator struct {
	Resolver *chain.Resolver
}

// NewCalculator wires a calculator that shares the given resolver's cache.
func NewCalculator(r *chain.Resolver) *Calculator {
	return &Calculator{Resolver: r}
}

// Presses returns the minimal press count to type code on the numeric keypad
// through depth directional relays.
func (c *Calculator) Presses(ctx context.Context, code domain.Code, depth int) (int, ports.Stats, error) {
	return c.Resolver.KeyPresses(ctx, layout.Numeric, code.Buttons, depth)
}

// Complexity returns the sum over codes of value x minimal presses.
func (c *Calculator) Complexity(ctx context.Context, codes []domain.Code, depth int) (int, ports.Stats, error) {
	var agg ports.Stats
	total := 0
	for _, code := range codes {
		presses, st, err := c.Presses(ctx, code, depth)
		agg.Expansions += st.Expansions
		agg.CacheHits += st.CacheHits
		agg.Duration += st.Duration
		if err != nil {
			return 0, agg, err
		}
		total += presses * code.Value
	}
	return total, agg, nil
}
