package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/user-form/internal/model"
)

// TestBoltStore checks the common store behavior on a fresh bolt file.
func TestBoltStore(t *testing.T) {
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "users.bolt"), boltFileMode)
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

// TestBoltStoreReopen closes and reopens the bolt file. It expects the users to survive in their
// original order, and new users to be appended after them.
func TestBoltStoreReopen(t *testing.T) {
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "users.bolt")

	s, err := NewBoltStore(file, boltFileMode)
	require.NoError(t, err)
	require.NoError(t, s.Append(ctx, ada))
	require.NoError(t, s.Append(ctx, grace))
	require.NoError(t, s.Close())

	s, err = NewBoltStore(file, boltFileMode)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Append(ctx, alan))

	users, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.User{ada, grace, alan}, users)
}

// TestBoltStoreOrderBeyondOneByte appends more than 256 users. It expects the order to hold
// when the sequence number needs more than one byte.
func TestBoltStoreOrderBeyondOneByte(t *testing.T) {
	ctx := context.Background()
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "users.bolt"), boltFileMode)
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 300; i++ {
		require.NoError(t, s.Append(ctx, model.User{Phone: string(rune('a' + i%26))}))
	}
	users, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 300)
	for i, u := range users {
		assert.Equal(t, string(rune('a'+i%26)), u.Phone, "position %d", i)
	}
}

// TestBoltStoreClosed appends to a closed store. It expects an error.
func TestBoltStoreClosed(t *testing.T) {
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "users.bolt"), boltFileMode)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.Error(t, s.Append(context.Background(), ada))
}
