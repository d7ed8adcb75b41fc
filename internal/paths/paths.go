// Package paths enumerates the shortest gap-avoiding move sequences between
// two buttons on a keypad layout. Every sequence has exactly Manhattan-distance
// length; only the order of moves differs, which is what makes one sequence
// cheaper than another at the next chain level up.
package paths

import (
	"fmt"
	"slices"

	"svw.info/keypad/internal/domain"
	"svw.info/keypad/internal/layout"
)

// Shortest returns every distinct ordering of the required moves from one
// button to another that stays on the grid and never enters the gap.
// from == to yields a single empty sequence. Both buttons must belong to l.
//
// The result is never empty on the two fixed layouts: at least one of the
// "vertical first" / "horizontal first" orderings always avoids the single
// gap cell. An empty result means the layout tables are wrong, so it panics.
func Shortest(l *layout.Layout, from, to domain.Button) [][]domain.Button {
	src := l.CoordinateOf(from)
	dst := l.CoordinateOf(to)

	vert, vn := axisMoves(dst.Row-src.Row, domain.MoveDown, domain.MoveUp)
	horiz, hn := axisMoves(dst.Col-src.Col, domain.MoveRight, domain.MoveLeft)
	if vn+hn == 0 {
		return [][]domain.Button{{}}
	}

	var out [][]domain.Button
	seq := make([]domain.Button, 0, vn+hn)

	// Walk the grid while generating, pruning any prefix that steps onto
	// the gap or off the board. Choosing from remaining move counts yields
	// each distinct arrangement of the multiset exactly once.
	var walk func(pos domain.Coordinate, vn, hn int)
	walk = func(pos domain.Coordinate, vn, hn int) {
		if vn == 0 && hn == 0 {
			out = append(out, slices.Clone(seq))
			return
		}
		if vn > 0 {
			if next := pos.Step(vert); l.IsValid(next) {
				seq = append(seq, vert)
				walk(next, vn-1, hn)
				seq = seq[:len(seq)-1]
			}
		}
		if hn > 0 {
			if next := pos.Step(horiz); l.IsValid(next) {
				seq = append(seq, horiz)
				walk(next, vn, hn-1)
				seq = seq[:len(seq)-1]
			}
		}
	}
	walk(src, vn, hn)

	if len(out) == 0 {
		panic(fmt.Sprintf("paths: no gap-avoiding route %v -> %v on %s layout", from, to, l.Name()))
	}
	return out
}

func axisMoves(delta int, positive, negative domain.Button) (domain.Button, int) {
	if delta >= 0 {
		return positive, delta
	}
	return negative, -delta
}
