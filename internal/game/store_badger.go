package game

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger"
)

// BadgerSessionStore keeps snapshots in an embedded Badger database, for
// resuming on the same machine without a Redis server.
type BadgerSessionStore struct {
	db *badger.DB
}

func NewBadgerSessionStore(db *badger.DB) *BadgerSessionStore {
	return &BadgerSessionStore{db: db}
}

func (s *BadgerSessionStore) key(player string) []byte {
	return []byte("session/" + player)
}

func (s *BadgerSessionStore) Save(_ context.Context, player string, snap SessionSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(s.key(player), b))
	})
}

func (s *BadgerSessionStore) Load(_ context.Context, player string) (SessionSnapshot, bool, error) {
	var snap SessionSnapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(player))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &snap)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return SessionSnapshot{}, false, nil
	}
	if err != nil {
		return SessionSnapshot{}, false, err
	}
	return snap, true, nil
}

func (s *BadgerSessionStore) Delete(_ context.Context, player string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.key(player))
	})
}
