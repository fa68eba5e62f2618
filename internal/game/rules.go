package game

import (
	"errors"
	"fmt"
)

const (
	DefaultCodeLength = 4
	DefaultNumColors  = 6
	DefaultMaxGuesses = 4
)

// Rules holds the game constants. The zero value is not usable; start from DefaultRules.
type Rules struct {
	CodeLength int
	NumColors  int
	MaxGuesses int
}

func DefaultRules() Rules {
	return Rules{
		CodeLength: DefaultCodeLength,
		NumColors:  DefaultNumColors,
		MaxGuesses: DefaultMaxGuesses,
	}
}

func (r Rules) Validate() error {
	if r.NumColors < 1 || r.NumColors > AlphabetSize {
		return fmt.Errorf("num colors must be in [1,%d], got %d", AlphabetSize, r.NumColors)
	}
	if r.CodeLength < 1 || r.CodeLength > r.NumColors {
		// secrets never repeat a color, so the palette bounds the length
		return fmt.Errorf("code length must be in [1,%d], got %d", r.NumColors, r.CodeLength)
	}
	if r.MaxGuesses < 1 {
		return errors.New("max guesses must be positive")
	}
	return nil
}

// CheckGuess reports why a guess is not acceptable, or nil. Every reason
// wraps ErrInvalidGuess.
func (r Rules) CheckGuess(guess Code) error {
	if err := r.checkCode(guess); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGuess, err)
	}
	return nil
}

func (r Rules) IsValidGuess(guess Code) bool {
	return r.checkCode(guess) == nil
}

func (r Rules) checkCode(code Code) error {
	if len(code) != r.CodeLength {
		return fmt.Errorf("%w: want %d, got %d", ErrCodeLength, r.CodeLength, len(code))
	}
	var seen [AlphabetSize]bool
	for _, c := range code {
		if int(c) >= r.NumColors {
			return fmt.Errorf("%w: %d", ErrInvalidSymbol, uint8(c))
		}
		if seen[c] {
			return fmt.Errorf("%w: %s", ErrDuplicateColor, c)
		}
		seen[c] = true
	}
	return nil
}
