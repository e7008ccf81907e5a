package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecourts_backend/internal/feature/auth/domain/entity"
	jwtmw "ecourts_backend/internal/platform/jwt"
)

func TestAccountLookup(t *testing.T) {
	t.Parallel()

	db := newTestDB(t, &entity.User{})
	users := NewUserGorm(db)
	ctx := context.Background()

	admin := &entity.User{Mobile: "9999999999", Password: "hash", IsAdmin: true}
	require.NoError(t, users.Create(ctx, admin))

	lookup := NewAccountLookup(users)

	acct, err := lookup.LookupAccount(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, jwtmw.Account{Mobile: "9999999999", IsAdmin: true}, acct)

	require.NoError(t, users.Delete(ctx, admin.ID))
	_, err = lookup.LookupAccount(ctx, admin.ID)
	assert.ErrorIs(t, err, jwtmw.ErrAccountNotFound)
}
