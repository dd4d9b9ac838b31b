package auth

import (
	"context"

	"ems-cli/api"
)

// Provider talks to whatever issues tokens. *api.Client implements it.
type Provider interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.Envelope, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.Envelope, error)
	Refresh(ctx context.Context, token string) (*api.Envelope, error)
}
