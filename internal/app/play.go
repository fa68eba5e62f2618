package app

import (
	"context"
	"errors"

	"example.com/mastermind/internal/console"
	"example.com/mastermind/internal/game"
)

func (a *App) runInteractive(ctx context.Context) error {
	a.ui.PrintRules(a.svc.Rules())

	sess, err := a.resumeOrStart(ctx)
	for {
		if err != nil {
			return a.stopped(ctx, err)
		}
		if err := a.playSession(ctx, sess); err != nil {
			return a.stopped(ctx, err)
		}

		var again bool
		again, err = a.ui.AskPlayAgain(ctx)
		if err != nil {
			return a.stopped(ctx, err)
		}
		if !again {
			break
		}
		sess, err = a.svc.Start(ctx, a.cfg.Player)
	}

	a.farewell(ctx)
	return nil
}

func (a *App) resumeOrStart(ctx context.Context) (*game.Session, error) {
	sess, ok, err := a.svc.Resume(ctx, a.cfg.Player)
	if err != nil {
		a.log.Warn("could not look up unfinished session", "player", a.cfg.Player, "err", err)
	}
	if ok {
		resume, err := a.ui.AskResume(ctx, sess.Attempt())
		if err != nil {
			return nil, err
		}
		if resume {
			return sess, nil
		}
	}
	return a.svc.Start(ctx, a.cfg.Player)
}

// playSession drives one session to Won or Lost. Rejected input never
// consumes an attempt.
func (a *App) playSession(ctx context.Context, sess *game.Session) error {
	rules := sess.Rules()
	for !sess.Finished() {
		guess, err := a.ui.ReadGuess(ctx, sess.Attempt(), rules)
		if errors.Is(err, game.ErrInvalidGuess) {
			a.ui.InvalidGuess()
			continue
		}
		if err != nil {
			return err
		}

		turn, err := a.svc.Submit(ctx, sess, guess)
		if errors.Is(err, game.ErrInvalidGuess) {
			a.ui.InvalidGuess()
			continue
		}
		if err != nil {
			return err
		}
		a.ui.Feedback(turn.Feedback)
	}

	secret, _ := sess.Secret()
	if sess.State() == game.StateWon {
		a.ui.Won(secret)
	} else {
		a.ui.Lost(secret)
	}
	return nil
}

// stopped ends the loop. Closed input and cancellation are normal exits.
func (a *App) stopped(ctx context.Context, err error) error {
	if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
		a.log.Debug("input ended", "reason", err)
		a.farewell(context.WithoutCancel(ctx))
		return nil
	}
	return err
}

func (a *App) farewell(ctx context.Context) {
	var lifetime *game.Summary
	if a.ledger != nil {
		sum, err := a.ledger.Summary(ctx, a.cfg.Player)
		if err != nil {
			a.log.Warn("lifetime summary unavailable", "err", err)
		} else {
			lifetime = &sum
		}
	}
	a.ui.Farewell(a.svc.Stats(), lifetime)
}
