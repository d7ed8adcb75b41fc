package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

// Coordinate identifies a cell on a keypad grid, origin top-left.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Step returns the neighbouring coordinate in the direction of m.
// m must be one of the four moves.
func (c Coordinate) Step(m Button) Coordinate {
	switch m {
	case MoveUp:
		return Coordinate{Row: c.Row - 1, Col: c.Col}
	case MoveDown:
		return Coordinate{Row: c.Row + 1, Col: c.Col}
	case MoveLeft:
		return Coordinate{Row: c.Row, Col: c.Col - 1}
	case MoveRight:
		return Coordinate{Row: c.Row, Col: c.Col + 1}
	}
	panic(fmt.Sprintf("domain: %v is not a move", m))
}

// DistanceTo returns the Manhattan distance between two coordinates.
func (c Coordinate) DistanceTo(o Coordinate) int {
	dr, dc := o.Row-c.Row, o.Col-c.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Code is a door code: the digit buttons to type on the numeric keypad
// and the numeric value embedded in its text (digits only).
type Code struct {
	Text    string   `json:"text"`
	Buttons []Button `json:"-"`
	Value   int      `json:"value"`
}

// ParseCode reads a code like "029A". Digits become buttons and contribute
// to the value; a terminal 'A' is accepted but not stored, since the keypad
// model brackets every code with Activate implicitly.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	code := Code{Text: s}
	value := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			code.Buttons = append(code.Buttons, Key0+Button(r-'0'))
			value = value*10 + int(r-'0')
		case r == 'A':
			// implicit terminal Activate
		default:
			return Code{}, fmt.Errorf("code %q: unexpected character %q", s, r)
		}
	}
	if len(code.Buttons) == 0 {
		return Code{}, fmt.Errorf("code %q: no digits", s)
	}
	code.Value = value
	return code, nil
}

// ParseCodes reads one code per line, skipping blank lines.
func ParseCodes(text string) ([]Code, error) {
	var out []Code
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		code, err := ParseCode(line)
		if err != nil {
			return nil, err
		}
		out = append(out, code)
	}
	return out, nil
}

// Report is a persisted computation over a batch of codes at one chain depth.
type Report struct {
	ID         string   `json:"id"`
	Depth      int      `json:"depth"`
	Codes      []string `json:"codes"`
	Presses    []int    `json:"presses"`
	Complexity int      `json:"complexity"`
	DurationMs int64    `json:"durationMs"`
	CreatedAt  int64    `json:"createdAt"`
}

// ReportMeta is a lightweight listing entry.
type ReportMeta struct {
	ID         string `json:"id"`
	Depth      int    `json:"depth"`
	CodeCount  int    `json:"codeCount"`
	Complexity int    `json:"complexity"`
	CreatedAt  int64  `json:"createdAt"`
}

// ReportID derives a stable content-addressed ID for a batch of codes at a
// depth, so re-solving the same input overwrites rather than duplicates.
func ReportID(codes []string, depth int) string {
	h := xxh3.HashString(strings.Join(codes, "\n") + "\n#" + strconv.Itoa(depth))
	return fmt.Sprintf("%016x", h)
}
