package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ecourts_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum number of characters in a password.
	minPasswordLength = 6
	// maxPasswordBytes is the longest input bcrypt accepts.
	maxPasswordBytes = 72

	// dummyHash keeps login timing constant when the mobile number is unknown.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

var mobilePattern = regexp.MustCompile(`^\d{10,15}$`)

// UserRepository abstracts persistence of user accounts.
// Defined by the consumer (usecase), implemented in adapters.
type UserRepository interface {
	// Create persists a new user. Returns ErrUserAlreadyExists when the mobile number is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByMobile returns the user registered with mobile, or ErrUserNotFound.
	FindByMobile(ctx context.Context, mobile string) (*entity.User, error)

	// FindByID returns the user with id, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// List returns all users, newest first.
	List(ctx context.Context) ([]entity.User, error)

	// Delete removes the user with id, or returns ErrUserNotFound.
	Delete(ctx context.Context, id uint) error

	// CountByRole returns the number of users and how many of them are admins.
	CountByRole(ctx context.Context) (total int64, admins int64, err error)
}

// TokenGenerator issues signed access tokens.
type TokenGenerator interface {
	// GenerateToken returns a signed access token carrying the user's identity and role.
	GenerateToken(userID uint, mobile string, isAdmin bool) (string, error)
}

// Options configures refresh session behaviour.
type Options struct {
	// RefreshTTL is the lifetime of a refresh session.
	RefreshTTL time.Duration
	// MaxSessions caps active sessions per user. Zero means unlimited.
	MaxSessions int
}

// LoginResult is returned by Login and Refresh.
type LoginResult struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// SeedUser describes an account created on first run.
type SeedUser struct {
	Mobile   string
	Password string
	IsAdmin  bool
}

// UserCounts summarises the user table.
type UserCounts struct {
	Total   int64
	Admins  int64
	Regular int64
}

// authUsecase implements authentication, refresh sessions and user management.
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
	tokens   TokenGenerator
	opts     Options
	now      func() time.Time
}

// NewAuthUsecase creates an authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenGenerator, opts Options) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		opts:     opts,
		now:      time.Now,
	}
}

func validateCredentials(mobile, password string) error {
	if !mobilePattern.MatchString(mobile) {
		return fmt.Errorf("%w: mobile number must be 10 to 15 digits", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes long", ErrInvalidInput, maxPasswordBytes)
	}
	return nil
}

// Signup registers a standard user.
func (u *authUsecase) Signup(ctx context.Context, mobile, password string) (*entity.User, error) {
	return u.CreateUser(ctx, mobile, password, false)
}

// CreateUser registers a user with the given role. Used by signup and by admins.
func (u *authUsecase) CreateUser(ctx context.Context, mobile, password string, isAdmin bool) (*entity.User, error) {
	if err := validateCredentials(mobile, password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Mobile: mobile, Password: string(hashed), IsAdmin: isAdmin}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and opens a refresh session.
// The bcrypt comparison runs even for unknown users so response time does not reveal registration.
func (u *authUsecase) Login(ctx context.Context, mobile, password string, meta entity.SessionMeta) (*LoginResult, error) {
	user, err := u.users.FindByMobile(ctx, mobile)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		return nil, ErrInvalidCredentials
	}

	return u.issue(ctx, user, meta)
}

// Refresh rotates a refresh session: the old one is revoked and a new pair is issued.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string, meta entity.SessionMeta) (*LoginResult, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if session.IsRevoked() {
		return nil, ErrSessionRevoked
	}
	if session.IsExpired(u.now()) {
		return nil, ErrSessionExpired
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}
	return u.issue(ctx, user, meta)
}

// Logout revokes the refresh session. Unknown tokens are ignored.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

func (u *authUsecase) issue(ctx context.Context, user *entity.User, meta entity.SessionMeta) (*LoginResult, error) {
	if u.opts.MaxSessions > 0 {
		count, err := u.sessions.CountByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count sessions: %w", err)
		}
		for ; count >= int64(u.opts.MaxSessions); count-- {
			if err := u.sessions.DeleteOldestByUserID(ctx, user.ID); err != nil {
				return nil, fmt.Errorf("failed to evict session: %w", err)
			}
		}
	}

	session, err := entity.NewSession(user.ID, meta, u.now(), u.opts.RefreshTTL)
	if err != nil {
		return nil, err
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Mobile, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{
		User:         user,
		AccessToken:  token,
		RefreshToken: session.ID,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// ListUsers returns all users.
func (u *authUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// DeleteUser removes targetID on behalf of actorID. An admin cannot remove their own account.
func (u *authUsecase) DeleteUser(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return ErrSelfDeleteForbidden
	}
	if err := u.users.Delete(ctx, targetID); err != nil {
		return err
	}
	if err := u.sessions.RevokeAllByUserID(ctx, targetID); err != nil {
		slog.Warn("failed to revoke sessions of deleted user", "user_id", targetID, "error", err)
	}
	return nil
}

// CountUsers returns user totals by role.
func (u *authUsecase) CountUsers(ctx context.Context) (UserCounts, error) {
	total, admins, err := u.users.CountByRole(ctx)
	if err != nil {
		return UserCounts{}, err
	}
	return UserCounts{Total: total, Admins: admins, Regular: total - admins}, nil
}

// SeedDefaults creates the given accounts when their mobile numbers are not yet registered.
func (u *authUsecase) SeedDefaults(ctx context.Context, seeds []SeedUser) error {
	for _, s := range seeds {
		_, err := u.users.FindByMobile(ctx, s.Mobile)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrUserNotFound) {
			return err
		}
		if _, err := u.CreateUser(ctx, s.Mobile, s.Password, s.IsAdmin); err != nil && !errors.Is(err, ErrUserAlreadyExists) {
			return fmt.Errorf("seed user %s: %w", s.Mobile, err)
		}
		slog.Info("seeded user", "mobile", s.Mobile, "admin", s.IsAdmin)
	}
	return nil
}
