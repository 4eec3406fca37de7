package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/user"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/password"
)

// LocalAuthenticator checks credentials against the users table
type LocalAuthenticator struct {
	users        UserRepository
	tokens       TokenIssuer
	timeProvider TimeProvider
	logger       Logger
}

func NewLocalAuthenticator(users UserRepository, tokens TokenIssuer, timeProvider TimeProvider, logger Logger) *LocalAuthenticator {
	return &LocalAuthenticator{
		users:        users,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (a *LocalAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*Session, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(creds.Username)

	// 1. Load the account
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			a.logger.Warn("Authenticate: unknown username=%s", username)
			return nil, ErrInvalidCredentials
		}
		a.logger.Error("Authenticate: failed to get user: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - failed to get user: %v", ErrInternal, err)
	}

	// 2. Check the password before revealing the account state
	if err := password.Compare(user.PasswordHash, creds.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) || errors.Is(err, password.ErrInvalidPassword) {
			a.logger.Warn("Authenticate: wrong password for username=%s", username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: Authenticate - compare password: %v", ErrInternal, err)
	}

	if !user.Active {
		a.logger.Warn("Authenticate: inactive user id=%s", user.ID)
		return nil, ErrUserInactive
	}

	// 3. Issue the token
	token, expiresAt, err := a.tokens.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("%w: Authenticate - sign token: %v", ErrInternal, err)
	}

	// 4. Record the login; a failure here does not block the session
	if err := a.users.UpdateLastLogin(ctx, user.ID, a.timeProvider.Now()); err != nil {
		a.logger.Error("Authenticate: failed to update last login for id=%s: %v", user.ID, err)
	}

	a.logger.Info("Authenticate: user id=%s logged in, role=%s", user.ID, user.Role)
	return newSession(token, expiresAt, user.ID, user.Username, user.Name, user.Role), nil
}
