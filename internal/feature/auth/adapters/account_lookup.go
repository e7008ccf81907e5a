package adapters

import (
	"context"
	"errors"

	"ecourts_backend/internal/feature/auth/domain/entity"
	"ecourts_backend/internal/feature/auth/usecase"
	jwtmw "ecourts_backend/internal/platform/jwt"
)

// UserFinder is the part of usecase.UserRepository the account lookup reads.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// accountLookup resolves access token subjects against the user store.
type accountLookup struct {
	users UserFinder
}

var _ jwtmw.AccountLookup = (*accountLookup)(nil)

// NewAccountLookup creates the lookup the auth middleware uses to reload token subjects.
func NewAccountLookup(users UserFinder) *accountLookup {
	return &accountLookup{users: users}
}

// LookupAccount returns the stored mobile and role of userID, or jwtmw.ErrAccountNotFound.
func (a *accountLookup) LookupAccount(ctx context.Context, userID uint) (jwtmw.Account, error) {
	u, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return jwtmw.Account{}, jwtmw.ErrAccountNotFound
		}
		return jwtmw.Account{}, err
	}
	return jwtmw.Account{Mobile: u.Mobile, IsAdmin: u.IsAdmin}, nil
}
