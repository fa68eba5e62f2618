package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderStub struct {
	got []Outcome
	err error
}

func (r *recorderStub) Record(_ context.Context, o Outcome) error {
	r.got = append(r.got, o)
	return r.err
}

type brokenStore struct{}

func (brokenStore) Save(context.Context, string, SessionSnapshot) error { return errors.New("down") }
func (brokenStore) Load(context.Context, string) (SessionSnapshot, bool, error) {
	return SessionSnapshot{}, false, errors.New("down")
}
func (brokenStore) Delete(context.Context, string) error { return errors.New("down") }

func newTestService(t *testing.T, secret string, store SessionStore, rec OutcomeRecorder) *SessionService {
	t.Helper()
	gen := NewGenerator(DefaultRules(), secretSource(t, secret))
	return NewSessionService(DefaultRules(), gen, store, rec, discardLogger())
}

func TestSessionService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySessionStore()
	rec := &recorderStub{}
	svc := newTestService(t, "GROW", store, rec)

	sess, err := svc.Start(ctx, "alice")
	require.NoError(t, err)

	snap, found, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, snap.Attempt)

	// invalid guesses touch nothing
	_, err = svc.Submit(ctx, sess, mustCode(t, "GGOW"))
	require.ErrorIs(t, err, ErrDuplicateColor)
	snap, _, _ = store.Load(ctx, "alice")
	assert.Equal(t, 1, snap.Attempt)

	turn, err := svc.Submit(ctx, sess, mustCode(t, "BOGW"))
	require.NoError(t, err)
	assert.Equal(t, Feedback{Exact: 1, Misplaced: 2}, turn.Feedback)
	snap, _, _ = store.Load(ctx, "alice")
	assert.Equal(t, 2, snap.Attempt)
	assert.Len(t, snap.History, 1)

	_, err = svc.Submit(ctx, sess, mustCode(t, "GROW"))
	require.NoError(t, err)

	_, found, err = store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, found, "snapshot must be gone after the session ends")

	require.Len(t, rec.got, 1)
	assert.True(t, rec.got[0].Won)
	assert.Equal(t, 2, rec.got[0].Attempts)
	assert.Equal(t, "alice", rec.got[0].Player)
	assert.Equal(t, sess.ID(), rec.got[0].SessionID)

	assert.Equal(t, Summary{Played: 1, Won: 1}, svc.Stats())
}

func TestSessionService_LossCountsAsPlayed(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "GBRY", nil, nil)

	sess, err := svc.Start(ctx, "bob")
	require.NoError(t, err)
	for _, g := range wrongGuesses {
		_, err := svc.Submit(ctx, sess, mustCode(t, g))
		require.NoError(t, err)
	}
	assert.Equal(t, StateLost, sess.State())
	assert.Equal(t, Summary{Played: 1, Won: 0}, svc.Stats())
}

func TestSessionService_Resume(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySessionStore()

	svc1 := newTestService(t, "GROW", store, nil)
	sess, err := svc1.Start(ctx, "alice")
	require.NoError(t, err)
	_, err = svc1.Submit(ctx, sess, mustCode(t, "BOGW"))
	require.NoError(t, err)

	// a fresh process sharing the store
	svc2 := newTestService(t, "YBRG", store, nil)
	got, ok, err := svc2.Resume(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sess.ID(), got.ID())
	assert.Equal(t, 2, got.Attempt())

	_, err = svc2.Submit(ctx, got, mustCode(t, "GROW"))
	require.NoError(t, err)
	assert.Equal(t, Summary{Played: 1, Won: 1}, svc2.Stats())
	assert.Equal(t, Summary{}, svc1.Stats())

	_, ok, err = svc2.Resume(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionService_ResumeDropsBrokenSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySessionStore()
	require.NoError(t, store.Save(ctx, "alice", SessionSnapshot{SessionID: "garbage"}))

	svc := newTestService(t, "GROW", store, nil)
	_, ok, err := svc.Resume(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	_, found, _ := store.Load(ctx, "alice")
	assert.False(t, found)
}

func TestSessionService_StorageFailuresDoNotBreakPlay(t *testing.T) {
	ctx := context.Background()
	rec := &recorderStub{err: errors.New("ledger down")}
	svc := newTestService(t, "GROW", brokenStore{}, rec)

	sess, err := svc.Start(ctx, "alice")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, sess, mustCode(t, "BOGW"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, sess, mustCode(t, "GROW"))
	require.NoError(t, err)

	assert.Equal(t, Summary{Played: 1, Won: 1}, svc.Stats())

	_, _, err = svc.Resume(ctx, "alice")
	assert.Error(t, err)
}

func TestSessionService_StartFailsWithoutRandomness(t *testing.T) {
	gen := NewGenerator(DefaultRules(), &scriptedSource{})
	svc := NewSessionService(DefaultRules(), gen, nil, nil, discardLogger())

	_, err := svc.Start(context.Background(), "alice")
	assert.Error(t, err)
}
