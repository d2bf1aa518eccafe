package app

import (
	"context"

	"github.com/dwikikusuma/qkart-client/internal/session"
)

type Gateway interface {
	Login(ctx context.Context, username, password string) (session.Session, error)
	Register(ctx context.Context, username, password string) error
}
