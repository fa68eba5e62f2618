package game

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// SessionSnapshot is the serialisable state of an unfinished session.
type SessionSnapshot struct {
	SessionID  string `json:"sessionId"`
	Player     string `json:"player"`
	Secret     string `json:"secret"`
	State      State  `json:"state"`
	Attempt    int    `json:"attempt"`
	MaxGuesses int    `json:"maxGuesses"`
	History    []Turn `json:"history"`

	StartedAtMs int64 `json:"startedAtMs"`
}

func (s *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		SessionID:  s.id.String(),
		Player:     s.player,
		Secret:     s.secret.String(),
		State:      s.state,
		Attempt:    s.attempt,
		MaxGuesses: s.rules.MaxGuesses,
		History:    slices.Clone(s.history),

		StartedAtMs: s.startedAt.UnixMilli(),
	}
}

// RestoreSession rebuilds a session from a snapshot. The snapshot's guess
// budget wins over rules.MaxGuesses so a resumed game keeps its limit.
func RestoreSession(rules Rules, snap SessionSnapshot) (*Session, error) {
	id, err := uuid.Parse(snap.SessionID)
	if err != nil {
		return nil, fmt.Errorf("snapshot id: %w", err)
	}
	if snap.MaxGuesses > 0 {
		rules.MaxGuesses = snap.MaxGuesses
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	secret, err := ParseCode(snap.Secret, rules.CodeLength)
	if err != nil {
		return nil, fmt.Errorf("snapshot secret: %w", err)
	}
	if err := rules.checkCode(secret); err != nil {
		return nil, fmt.Errorf("snapshot secret: %w", err)
	}

	if snap.State != StateAwaitingGuess {
		return nil, fmt.Errorf("snapshot state %q is not resumable", snap.State)
	}
	if snap.Attempt < 1 || snap.Attempt > rules.MaxGuesses {
		return nil, fmt.Errorf("snapshot attempt %d out of range", snap.Attempt)
	}
	if len(snap.History) != snap.Attempt-1 {
		return nil, errors.New("snapshot history does not match attempt")
	}

	return &Session{
		id:        id,
		player:    snap.Player,
		rules:     rules,
		secret:    secret,
		state:     snap.State,
		attempt:   snap.Attempt,
		history:   slices.Clone(snap.History),
		startedAt: time.UnixMilli(snap.StartedAtMs),
	}, nil
}
