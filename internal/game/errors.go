package game

import "errors"

// ErrInvalidGuess wraps every reason a guess is refused without consuming an attempt.
var ErrInvalidGuess = errors.New("invalid guess")

var (
	ErrCodeLength     = errors.New("wrong code length")
	ErrInvalidSymbol  = errors.New("unknown color symbol")
	ErrDuplicateColor = errors.New("color repeated")
	ErrSessionOver    = errors.New("session already finished")
)
