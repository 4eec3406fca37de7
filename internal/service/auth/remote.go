package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/integrations/identityservice"
)

// RemoteAuthenticator delegates credential checks to the identity service
// and signs a local session token for the returned identity.
type RemoteAuthenticator struct {
	client IdentityClient
	tokens TokenIssuer
	logger Logger
}

func NewRemoteAuthenticator(client IdentityClient, tokens TokenIssuer, logger Logger) *RemoteAuthenticator {
	return &RemoteAuthenticator{
		client: client,
		tokens: tokens,
		logger: logger,
	}
}

func (a *RemoteAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*Session, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(creds.Username)

	identity, err := a.client.Verify(ctx, username, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, identityservice.ErrInvalidCredentials):
			return nil, ErrInvalidCredentials
		case errors.Is(err, identityservice.ErrUserInactive):
			return nil, ErrUserInactive
		}
		a.logger.Error("Authenticate: identity service error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - identity service: %v", ErrInternal, err)
	}

	role := domain.Role(identity.Role)
	if !role.IsValid() {
		a.logger.Error("Authenticate: identity service returned unknown role=%s for username=%s", identity.Role, username)
		return nil, fmt.Errorf("%w: Authenticate - unknown role %q", ErrInternal, identity.Role)
	}

	token, expiresAt, err := a.tokens.GenerateToken(identity.UserID, role.String())
	if err != nil {
		return nil, fmt.Errorf("%w: Authenticate - sign token: %v", ErrInternal, err)
	}

	a.logger.Info("Authenticate: remote user id=%s logged in, role=%s", identity.UserID, role)
	return newSession(token, expiresAt, identity.UserID, identity.Username, identity.Name, role), nil
}
