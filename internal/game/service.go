package game

import (
	"context"
	"log/slog"
)

// OutcomeRecorder receives every finished session.
type OutcomeRecorder interface {
	Record(ctx context.Context, o Outcome) error
}

// SessionService is responsible for:
// - creating sessions with fresh secrets
// - keeping a snapshot of each unfinished session so it can be resumed
// - feeding finished sessions into Statistics and the optional recorder
type SessionService struct {
	rules    Rules
	gen      *Generator
	persist  SessionStore
	outcomes OutcomeRecorder // optional
	stats    *Statistics
	log      *slog.Logger
}

func NewSessionService(rules Rules, gen *Generator, persist SessionStore, outcomes OutcomeRecorder, log *slog.Logger) *SessionService {
	if log == nil {
		log = slog.Default()
	}
	if persist == nil {
		persist = NewInMemorySessionStore()
	}
	return &SessionService{
		rules:    rules,
		gen:      gen,
		persist:  persist,
		outcomes: outcomes,
		stats:    NewStatistics(),
		log:      log,
	}
}

func (s *SessionService) Rules() Rules   { return s.rules }
func (s *SessionService) Stats() Summary { return s.stats.Summary() }

// Start replaces any unfinished session of the player with a new one.
func (s *SessionService) Start(ctx context.Context, player string) (*Session, error) {
	secret, err := s.gen.Generate()
	if err != nil {
		return nil, err
	}
	sess, err := NewSession(player, s.rules, secret)
	if err != nil {
		return nil, err
	}

	s.save(ctx, sess)
	s.log.Debug("session started", "session", sess.ID(), "player", player)
	return sess, nil
}

// Resume returns the player's unfinished session, if one was persisted.
// A snapshot that cannot be restored is dropped.
func (s *SessionService) Resume(ctx context.Context, player string) (*Session, bool, error) {
	snap, found, err := s.persist.Load(ctx, player)
	if err != nil || !found {
		return nil, false, err
	}

	sess, err := RestoreSession(s.rules, snap)
	if err != nil {
		s.log.Warn("discarding unusable snapshot", "player", player, "err", err)
		if err := s.persist.Delete(ctx, player); err != nil {
			s.log.Warn("snapshot delete failed", "player", player, "err", err)
		}
		return nil, false, nil
	}

	s.log.Debug("session resumed", "session", sess.ID(), "player", player, "attempt", sess.Attempt())
	return sess, true, nil
}

// Submit plays a guess on sess. Validation errors come back untouched and
// nothing is persisted; storage failures are logged only.
func (s *SessionService) Submit(ctx context.Context, sess *Session, guess Code) (Turn, error) {
	turn, err := sess.Submit(guess)
	if err != nil {
		return Turn{}, err
	}

	if out, done := sess.Outcome(); done {
		s.finish(ctx, out)
		return turn, nil
	}
	s.save(ctx, sess)
	return turn, nil
}

func (s *SessionService) finish(ctx context.Context, out Outcome) {
	s.stats.Record(out)
	s.log.Info("session finished",
		"session", out.SessionID,
		"player", out.Player,
		"won", out.Won,
		"attempts", out.Attempts,
	)

	if s.outcomes != nil {
		if err := s.outcomes.Record(ctx, out); err != nil {
			s.log.Warn("outcome not recorded", "session", out.SessionID, "err", err)
		}
	}
	if err := s.persist.Delete(ctx, out.Player); err != nil {
		s.log.Warn("snapshot delete failed", "player", out.Player, "err", err)
	}
}

func (s *SessionService) save(ctx context.Context, sess *Session) {
	if err := s.persist.Save(ctx, sess.Player(), sess.Snapshot()); err != nil {
		s.log.Warn("snapshot save failed", "session", sess.ID(), "err", err)
	}
}
