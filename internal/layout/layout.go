// Package layout describes the two fixed keypads: the numeric door pad and
// the directional controller pad. Each layout maps its buttons to grid
// coordinates and marks the single gap cell a robotic arm must never enter.
package layout

import (
	"fmt"
	"sort"

	"svw.info/keypad/internal/domain"
)

// Layout is one keypad: button positions, grid bounds, and the gap.
// Both instances are fixed constants; never mutate them.
type Layout struct {
	name   string
	rows   int
	cols   int
	gap    domain.Coordinate
	coords map[domain.Button]domain.Coordinate
}

// Numeric is the 4x3 door keypad:
//
//	7 8 9
//	4 5 6
//	1 2 3
//	_ 0 A
var Numeric = &Layout{
	name: "numeric",
	rows: 4,
	cols: 3,
	gap:  domain.Coordinate{Row: 3, Col: 0},
	coords: map[domain.Button]domain.Coordinate{
		domain.Key7: {Row: 0, Col: 0}, domain.Key8: {Row: 0, Col: 1}, domain.Key9: {Row: 0, Col: 2},
		domain.Key4: {Row: 1, Col: 0}, domain.Key5: {Row: 1, Col: 1}, domain.Key6: {Row: 1, Col: 2},
		domain.Key1: {Row: 2, Col: 0}, domain.Key2: {Row: 2, Col: 1}, domain.Key3: {Row: 2, Col: 2},
		domain.Key0: {Row: 3, Col: 1}, domain.KeyActivate: {Row: 3, Col: 2},
	},
}

// Directional is the 2x3 controller keypad:
//
//	_ ^ A
//	< v >
var Directional = &Layout{
	name: "directional",
	rows: 2,
	cols: 3,
	gap:  domain.Coordinate{Row: 0, Col: 0},
	coords: map[domain.Button]domain.Coordinate{
		domain.MoveUp: {Row: 0, Col: 1}, domain.KeyActivate: {Row: 0, Col: 2},
		domain.MoveLeft: {Row: 1, Col: 0}, domain.MoveDown: {Row: 1, Col: 1}, domain.MoveRight: {Row: 1, Col: 2},
	},
}

func (l *Layout) Name() string { return l.name }

// Gap returns the coordinate of the hole in the keypad.
func (l *Layout) Gap() domain.Coordinate { return l.gap }

// Contains reports whether b is a button of this keypad.
func (l *Layout) Contains(b domain.Button) bool {
	_, ok := l.coords[b]
	return ok
}

// CoordinateOf returns the position of b. Asking for a button outside the
// layout's alphabet is a contract violation and panics.
func (l *Layout) CoordinateOf(b domain.Button) domain.Coordinate {
	c, ok := l.coords[b]
	if !ok {
		panic(fmt.Sprintf("layout %s: no button %v", l.name, b))
	}
	return c
}

// IsValid reports whether c is inside the grid and not the gap.
func (l *Layout) IsValid(c domain.Coordinate) bool {
	if c.Row < 0 || c.Row >= l.rows || c.Col < 0 || c.Col >= l.cols {
		return false
	}
	return c != l.gap
}

// Buttons returns the layout's alphabet in a stable order.
func (l *Layout) Buttons() []domain.Button {
	out := make([]domain.Button, 0, len(l.coords))
	for b := range l.coords {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
