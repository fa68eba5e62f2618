package solver

import (
	"context"
	"errors"

	"example.com/mastermind/internal/game"
)

var errExhausted = errors.New("solver: no candidate left")

// Play runs one full session for player on svc, guessing with a fresh Solver.
func Play(ctx context.Context, svc *game.SessionService, player string) (game.Outcome, error) {
	sess, err := svc.Start(ctx, player)
	if err != nil {
		return game.Outcome{}, err
	}

	s := New(svc.Rules())
	for !sess.Finished() {
		if err := ctx.Err(); err != nil {
			return game.Outcome{}, err
		}
		guess, ok := s.Next()
		if !ok {
			return game.Outcome{}, errExhausted
		}
		turn, err := svc.Submit(ctx, sess, guess)
		if err != nil {
			return game.Outcome{}, err
		}
		s.Observe(guess, turn.Feedback)
	}

	out, _ := sess.Outcome()
	return out, nil
}
