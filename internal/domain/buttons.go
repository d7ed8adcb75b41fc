package domain

import "fmt"

// Button is a key on one of the two keypads. The numeric keypad uses
// Key0..Key9 plus KeyActivate; the directional keypads use the four
// moves plus KeyActivate. Activate is the only symbol both share.
type Button uint8

const (
	Key0 Button = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyActivate
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

var buttonSymbols = map[Button]string{
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyActivate: "A",
	MoveUp:      "^",
	MoveDown:    "v",
	MoveLeft:    "<",
	MoveRight:   ">",
}

func (b Button) String() string {
	if s, ok := buttonSymbols[b]; ok {
		return s
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// IsMove reports whether b is one of the four directional moves.
func (b Button) IsMove() bool {
	return b == MoveUp || b == MoveDown || b == MoveLeft || b == MoveRight
}

// ParseButton maps a single-character symbol (0-9, A, ^, v, <, >) to its button.
func ParseButton(s string) (Button, error) {
	for b, sym := range buttonSymbols {
		if s == sym {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

// Sequence renders a list of buttons as a compact symbol string, e.g. "<v<A".
func Sequence(buttons []Button) string {
	out := make([]byte, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, b.String()...)
	}
	return string(out)
}
