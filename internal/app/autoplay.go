package app

import (
	"context"
	"errors"
	"fmt"

	"example.com/mastermind/internal/solver"
	"golang.org/x/sync/errgroup"
)

// runAutoplay plays AUTOPLAY_GAMES independent sessions with the solver,
// at most AUTOPLAY_WORKERS at a time. Statistics are shared.
func (a *App) runAutoplay(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Autoplay.Workers)

	a.log.Info("autoplay starting", "games", a.cfg.Autoplay.Games, "workers", a.cfg.Autoplay.Workers)

	for i := 0; i < a.cfg.Autoplay.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		player := fmt.Sprintf("%s-bot-%d", a.cfg.Player, i)
		g.Go(func() error {
			out, err := solver.Play(gctx, a.svc, player)
			if err != nil {
				return fmt.Errorf("%s: %w", player, err)
			}
			a.log.Debug("autoplay game", "player", player, "won", out.Won, "attempts", out.Attempts, "secret", out.Secret.String())
			return nil
		})
	}

	err := g.Wait()
	sum := a.svc.Stats()
	a.log.Info("autoplay finished", "played", sum.Played, "won", sum.Won)
	_, _ = fmt.Fprintf(a.out, "Solver won %d out of %d games.\n", sum.Won, sum.Played)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
