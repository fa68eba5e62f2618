package store

import (
	"context"
	"fmt"

	"example.com/mastermind/internal/game"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutcomeStore is the durable ledger of finished sessions. It is never used
// to seed the in-process statistics.
type OutcomeStore struct {
	db *pgxpool.Pool
}

func NewOutcomeStore(db *pgxpool.Pool) *OutcomeStore {
	return &OutcomeStore{db: db}
}

// Record implements game.OutcomeRecorder. Re-recording a session is a no-op.
func (s *OutcomeStore) Record(ctx context.Context, o game.Outcome) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO session_outcomes (session_id, player, won, attempts, secret, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id) DO NOTHING
	`, o.SessionID, o.Player, o.Won, o.Attempts, o.Secret.String(), o.FinishedAt)
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// Summary returns lifetime totals for a player across all runs.
func (s *OutcomeStore) Summary(ctx context.Context, player string) (game.Summary, error) {
	var sum game.Summary
	err := s.db.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE won)
		FROM session_outcomes
		WHERE player = $1
	`, player).Scan(&sum.Played, &sum.Won)
	if err != nil {
		return game.Summary{}, fmt.Errorf("outcome summary: %w", err)
	}
	return sum, nil
}
