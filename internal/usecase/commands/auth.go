package commands

import (
	"context"

	"washbook/internal/domain/user"
	"washbook/internal/pkg/errs"
	"washbook/internal/pkg/jwt"
	"washbook/internal/pkg/password"
	"washbook/internal/usecase/queries"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

// CredentialReader exposes the stored hash alongside the user view; only the
// auth command ever sees password hashes.
type CredentialReader interface {
	FindActiveByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

type authCommandsImpl struct {
	users      CredentialReader
	jwtService *jwt.Service
}

func NewAuthCommands(users CredentialReader, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, hash, err := a.users.FindActiveByEmail(ctx, credentials.Email().Value())
	if err != nil || view == nil {
		// Same answer for unknown email and bad password.
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{Token: token, User: view}, nil
}
