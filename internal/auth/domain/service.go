package domain

import "context"

type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

type LoginRequest struct {
	Username string
	Password string
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (AuthResult, error)
	// Refresh verifies a refresh token and issues a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// ResolveUser verifies an access token and resolves its subject claim to
	// a stored user.
	ResolveUser(ctx context.Context, accessToken string) (User, error)
}
