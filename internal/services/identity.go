// Package services contains the application services of timediary. This file
// defines the identity service: username-only registration, login, logout,
// and the combined login-or-register flow used by the CLI.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/timediary/internal/common"
	"github.com/dmitrijs2005/timediary/internal/logging"
	"github.com/dmitrijs2005/timediary/internal/models"
	"github.com/dmitrijs2005/timediary/internal/repositories/sessions"
	"github.com/dmitrijs2005/timediary/internal/repositories/stats"
	"github.com/dmitrijs2005/timediary/internal/repositories/users"
	"github.com/google/uuid"
)

// AuthOutcome tags which path of LoginOrRegister succeeded.
type AuthOutcome string

const (
	OutcomeLoggedIn   AuthOutcome = "logged_in"
	OutcomeRegistered AuthOutcome = "registered"
)

// AuthResult is the tagged result of LoginOrRegister.
type AuthResult struct {
	Outcome AuthOutcome
	User    *models.User
}

// IdentityService defines account operations. The username is the entire
// credential: there are no passwords and no verification.
//
// Contract:
//   - Register: reject empty or duplicate usernames; on success the new user
//     becomes the current session and the user counter moves.
//   - Login: reject unknown usernames; on success the user becomes the
//     current session.
//   - Logout: clear the session; always succeeds on a healthy store.
//   - LoginOrRegister: try Login first, fall back to Register; the tagged
//     result keeps the two success paths distinguishable.
//   - Current: the session snapshot, nil when anonymous.
type IdentityService interface {
	Register(ctx context.Context, username string) (*models.User, error)
	Login(ctx context.Context, username string) (*models.User, error)
	Logout(ctx context.Context) error
	LoginOrRegister(ctx context.Context, username string) (*AuthResult, error)
	Current(ctx context.Context) (*models.User, error)
}

type identityService struct {
	users    users.Repository
	sessions sessions.Repository
	stats    stats.Repository
	log      logging.Logger
}

// NewIdentityService constructs an IdentityService over the given repositories.
func NewIdentityService(u users.Repository, s sessions.Repository, st stats.Repository, log logging.Logger) IdentityService {
	return &identityService{users: u, sessions: s, stats: st, log: log}
}

func (s *identityService) Register(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.ErrEmptyUsername
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, common.ErrDuplicateUsername
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now().UTC().Format("2006-01-02"),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if err := s.sessions.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	if err := s.stats.IncrementUsers(ctx); err != nil {
		// The account exists; a stale vanity counter is not worth failing for.
		s.log.Warn(ctx, "failed to bump user counter", "error", err)
	}

	s.log.Info(ctx, "user registered", "username", username)
	return user, nil
}

func (s *identityService) Login(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.ErrEmptyUsername
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	s.log.Info(ctx, "user logged in", "username", username)
	return user, nil
}

func (s *identityService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// LoginOrRegister tries Login first and falls back to Register when the
// username is unknown. Both paths can only fail together when the username
// is empty or the store is broken.
func (s *identityService) LoginOrRegister(ctx context.Context, username string) (*AuthResult, error) {
	user, err := s.Login(ctx, username)
	if err == nil {
		return &AuthResult{Outcome: OutcomeLoggedIn, User: user}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	user, err = s.Register(ctx, username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Outcome: OutcomeRegistered, User: user}, nil
}

func (s *identityService) Current(ctx context.Context) (*models.User, error) {
	return s.sessions.Current(ctx)
}
