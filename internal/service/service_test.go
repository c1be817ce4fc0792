package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/user-form/internal/model"
	"gitlab.com/dirk.krummacker/user-form/internal/store"
)

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) Append(context.Context, model.User) error {
	return errors.New("store unavailable")
}

func (brokenStore) ListAll(context.Context) ([]model.User, error) {
	return nil, errors.New("store unavailable")
}

// TestAddAndList adds two users. It expects both in submission order.
func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewMemoryStore())

	users, err := svc.AllUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	ada := model.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", Phone: "555"}
	grace := model.User{FirstName: "Grace", LastName: "Hopper"}
	require.NoError(t, svc.AddUser(ctx, ada))
	require.NoError(t, svc.AddUser(ctx, grace))

	users, err = svc.AllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.User{ada, grace}, users)
}

// TestStoreErrors uses a store that always fails. It expects the errors unchanged.
func TestStoreErrors(t *testing.T) {
	svc := New(brokenStore{})
	assert.EqualError(t, svc.AddUser(context.Background(), model.User{}), "store unavailable")
	_, err := svc.AllUsers(context.Background())
	assert.EqualError(t, err, "store unavailable")
}
