package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateWon           State = "won"
	StateLost          State = "lost"
)

func (s State) Terminal() bool { return s == StateWon || s == StateLost }

// Session is one playthrough. It is not safe for concurrent use; a driver
// feeds it one guess at a time.
type Session struct {
	id     uuid.UUID
	player string
	rules  Rules
	secret Code

	state   State
	attempt int // attempt being awaited; attempts used once terminal
	history []Turn

	startedAt  time.Time
	finishedAt time.Time
}

// NewSession starts in AwaitingGuess(1). The secret must be a well-formed
// code of distinct colors.
func NewSession(player string, rules Rules, secret Code) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if err := rules.checkCode(secret); err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	return &Session{
		id:        uuid.New(),
		player:    player,
		rules:     rules,
		secret:    slices.Clone(secret),
		state:     StateAwaitingGuess,
		attempt:   1,
		startedAt: time.Now(),
	}, nil
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) Player() string       { return s.player }
func (s *Session) Rules() Rules         { return s.rules }
func (s *Session) State() State         { return s.state }
func (s *Session) Attempt() int         { return s.attempt }
func (s *Session) History() []Turn      { return slices.Clone(s.history) }
func (s *Session) Finished() bool       { return s.state.Terminal() }
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Secret is revealed only once the session is over.
func (s *Session) Secret() (Code, bool) {
	if !s.Finished() {
		return nil, false
	}
	return slices.Clone(s.secret), true
}

// Submit plays one guess. An invalid guess returns an error wrapping
// ErrInvalidGuess and leaves the session in the same attempt.
func (s *Session) Submit(guess Code) (Turn, error) {
	if s.Finished() {
		return Turn{}, ErrSessionOver
	}
	if err := s.rules.CheckGuess(guess); err != nil {
		return Turn{}, err
	}

	turn := Turn{
		Attempt:  s.attempt,
		Guess:    guess.String(),
		Feedback: Score(s.secret, guess),
	}
	s.history = append(s.history, turn)

	switch {
	case turn.Feedback.Exact == s.rules.CodeLength:
		s.finish(StateWon)
	case s.attempt >= s.rules.MaxGuesses:
		s.finish(StateLost)
	default:
		s.attempt++
	}
	return turn, nil
}

func (s *Session) finish(st State) {
	s.state = st
	s.finishedAt = time.Now()
}

// Outcome is available once the session is over.
func (s *Session) Outcome() (Outcome, bool) {
	if !s.Finished() {
		return Outcome{}, false
	}
	return Outcome{
		SessionID:  s.id,
		Player:     s.player,
		Won:        s.state == StateWon,
		Attempts:   s.attempt,
		Secret:     slices.Clone(s.secret),
		FinishedAt: s.finishedAt,
	}, true
}
