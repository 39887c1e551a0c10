// Package session implements the session store: the currently
// authenticated identity, or none. At most one session is active at a
// time; it survives restarts via the key-value storage and is cleared on
// logout. Login and register simulate remote latency so the rendering
// layer can show loading state.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/marketcart/internal/client/models"
	"github.com/dmitrijs2005/marketcart/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/marketcart/internal/client/repositories/kv"
	"github.com/dmitrijs2005/marketcart/internal/common"
	"github.com/dmitrijs2005/marketcart/internal/logging"
)

// StorageKey is the key-value storage key the session is persisted under.
const StorageKey = "session"

// DefaultTokenTTL bounds how long a persisted session stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// envelope is the persisted session payload: the user record plus a signed
// token so a tampered or expired payload is rejected on rehydration.
type envelope struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store authenticates against the known-accounts repository and keeps the
// active session. Operations are invoked sequentially; a second
// login/register while one is pending is rejected.
type Store struct {
	accounts accounts.Repository
	storage  kv.Repository
	log      logging.Logger

	signingKey []byte
	tokenTTL   time.Duration

	// delay simulates remote-call latency for login/register; it gates the
	// loading flag and carries no other semantics.
	delay time.Duration

	user    *models.User
	loading bool
}

// NewStore returns a logged-out session store. Call Restore to rehydrate a
// previously persisted session.
func NewStore(acc accounts.Repository, storage kv.Repository, log logging.Logger, signingKey []byte, delay time.Duration) *Store {
	return &Store{
		accounts:   acc,
		storage:    storage,
		log:        log,
		signingKey: signingKey,
		tokenTTL:   DefaultTokenTTL,
		delay:      delay,
	}
}

// Restore rehydrates the session from storage. Missing, corrupt, tampered,
// or expired stored state degrades to "no session"; it is never fatal.
func (s *Store) Restore(ctx context.Context) error {
	data, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if data == nil {
		s.user = nil
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		s.log.Warn(ctx, "discarding corrupt session state", "error", err)
		s.user = nil
		return nil
	}

	userID, err := getUserIDFromToken(env.Token, s.signingKey)
	if err != nil || userID != env.User.ID {
		s.log.Warn(ctx, "discarding session with invalid token", "error", err)
		s.user = nil
		return nil
	}

	u := env.User.Public()
	s.user = &u
	return nil
}

// Login authenticates email/password against the known accounts. On
// success the session becomes active and is persisted. Unknown email and
// wrong password both surface as ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	if s.loading {
		return nil, common.ErrOperationInProgress
	}
	s.loading = true
	defer func() { s.loading = false }()

	if err := common.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	u, err := s.accounts.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("account lookup error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, password); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if err := s.activate(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "login successful", "user", u.ID)
	return s.user, nil
}

// Register creates a new account and logs it in. Fails with
// ErrEmailAlreadyInUse when the email is taken; the known-accounts set is
// left unchanged in that case.
func (s *Store) Register(ctx context.Context, name, email string, password []byte, isSeller bool) (*models.User, error) {
	if s.loading {
		return nil, common.ErrOperationInProgress
	}
	s.loading = true
	defer func() { s.loading = false }()

	if err := common.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	email = normalizeEmail(email)

	_, err := s.accounts.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailAlreadyInUse
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("account lookup error: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		IsSeller:     isSeller,
		CreatedAt:    time.Now(),
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("account creation error: %w", err)
	}

	if err := s.activate(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "registration successful", "user", u.ID)
	return s.user, nil
}

// Logout clears the active session and removes the persisted state.
// Logging out while logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.user = nil
	if err := s.storage.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to remove persisted session: %w", err)
	}
	return nil
}

// CurrentUser returns the active identity, or nil when logged out.
func (s *Store) CurrentUser() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsLoggedIn reports whether a session is active.
func (s *Store) IsLoggedIn() bool {
	return s.user != nil
}

// Loading reports whether a login or register call is currently pending.
func (s *Store) Loading() bool {
	return s.loading
}

// activate sets u as the active session and persists it with a fresh
// signed token.
func (s *Store) activate(ctx context.Context, u *models.User) error {
	token, err := generateToken(u.ID, s.signingKey, s.tokenTTL)
	if err != nil {
		return fmt.Errorf("token generation error: %w", err)
	}

	public := u.Public()
	data, err := json.Marshal(envelope{Token: token, User: public})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.storage.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.user = &public
	return nil
}

// normalizeEmail strips surrounding whitespace only; matching stays exact
// and case-sensitive.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
