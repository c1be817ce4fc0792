package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	"gitlab.com/dirk.krummacker/user-form/internal/model"
	"go.etcd.io/bbolt"
)

// usersBucket is the bolt bucket holding one JSON document per user.
var usersBucket = []byte("users")

// BoltStore keeps the users in a bolt file. Keys are the bucket's sequence numbers in big-endian
// byte order, so iterating the bucket yields the users in insertion order.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens or creates the bolt file and makes sure the users bucket exists.
func NewBoltStore(file string, mode os.FileMode) (*BoltStore, error) {
	db, err := bbolt.Open(file, mode, nil)
	if err != nil {
		return nil, fmt.Errorf("could not open bolt file %s: %w", file, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(usersBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create users bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Append(_ context.Context, user model.User) error {
	buf, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(usersBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, buf)
	})
}

func (s *BoltStore) ListAll(_ context.Context) ([]model.User, error) {
	users := []model.User{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(usersBucket).ForEach(func(_, v []byte) error {
			var user model.User
			if err := json.Unmarshal(v, &user); err != nil {
				return err
			}
			users = append(users, user)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Close closes the bolt file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
