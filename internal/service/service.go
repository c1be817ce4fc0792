package service

import (
	"context"

	"gitlab.com/dirk.krummacker/user-form/internal/model"
	"gitlab.com/dirk.krummacker/user-form/internal/store"
)

// Service connects the web page with the store that was chosen at startup.
type Service struct {
	store store.Store
}

// New returns a Service that owns the specified store.
func New(s store.Store) *Service {
	return &Service{store: s}
}

// AddUser appends the submitted user to the store.
func (s *Service) AddUser(ctx context.Context, user model.User) error {
	return s.store.Append(ctx, user)
}

// AllUsers returns every user submitted so far, oldest first.
func (s *Service) AllUsers(ctx context.Context) ([]model.User, error) {
	return s.store.ListAll(ctx)
}
