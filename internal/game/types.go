package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Color is one symbol of the fixed palette.
type Color uint8

const (
	Green Color = iota
	Blue
	Red
	Yellow
	White
	Orange
)

// alphabet is the single source for both directions of the symbol mapping.
var alphabet = [...]struct {
	color  Color
	symbol byte
	name   string
}{
	{Green, 'G', "Green"},
	{Blue, 'B', "Blue"},
	{Red, 'R', "Red"},
	{Yellow, 'Y', "Yellow"},
	{White, 'W', "White"},
	{Orange, 'O', "Orange"},
}

// AlphabetSize is the number of colors the palette can encode.
const AlphabetSize = len(alphabet)

var bySymbol = func() map[byte]Color {
	m := make(map[byte]Color, len(alphabet))
	for _, e := range alphabet {
		m[e.symbol] = e.color
	}
	return m
}()

// Colors returns the first n palette colors in enumeration order.
func Colors(n int) []Color {
	if n > AlphabetSize {
		n = AlphabetSize
	}
	out := make([]Color, 0, n)
	for _, e := range alphabet[:n] {
		out = append(out, e.color)
	}
	return out
}

func (c Color) valid() bool { return int(c) < AlphabetSize }

// Symbol is the single-letter encoding, '?' for values outside the palette.
func (c Color) Symbol() byte {
	if !c.valid() {
		return '?'
	}
	return alphabet[c].symbol
}

func (c Color) String() string {
	if !c.valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return alphabet[c].name
}

// ParseColor maps an uppercase letter to its color.
func ParseColor(sym byte) (Color, error) {
	c, ok := bySymbol[sym]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, sym)
	}
	return c, nil
}

// Code is an ordered sequence of colors, either a secret or a guess.
type Code []Color

// ParseCode converts text like "GROW" into a Code of the given length.
func ParseCode(s string, length int) (Code, error) {
	s = strings.TrimSpace(s)
	if len(s) != length {
		return nil, fmt.Errorf("%w: want %d symbols, got %d", ErrCodeLength, length, len(s))
	}
	code := make(Code, 0, length)
	for i := 0; i < len(s); i++ {
		c, err := ParseColor(s[i])
		if err != nil {
			return nil, err
		}
		code = append(code, c)
	}
	return code, nil
}

func (c Code) String() string {
	b := make([]byte, len(c))
	for i, col := range c {
		b[i] = col.Symbol()
	}
	return string(b)
}

// Feedback is the result of scoring one guess against the secret.
type Feedback struct {
	Exact     int `json:"exact"`
	Misplaced int `json:"misplaced"`
}

// Turn is one consumed attempt.
type Turn struct {
	Attempt  int      `json:"attempt"`
	Guess    string   `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// Outcome is produced once per finished session.
type Outcome struct {
	SessionID  uuid.UUID
	Player     string
	Won        bool
	Attempts   int
	Secret     Code
	FinishedAt time.Time
}
