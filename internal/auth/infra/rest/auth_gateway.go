package rest

import (
	"context"

	"github.com/dwikikusuma/qkart-client/internal/backend"
	"github.com/dwikikusuma/qkart-client/internal/session"
)

// AuthGateway implements app.Gateway over the backend's auth routes.
type AuthGateway struct {
	client *backend.Client
}

func NewAuthGateway(client *backend.Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success  bool    `json:"success"`
	Token    string  `json:"token"`
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
}

func (g *AuthGateway) Login(ctx context.Context, username, password string) (session.Session, error) {
	var resp loginResponse
	err := g.client.Post(ctx, "/auth/login", "", credentials{Username: username, Password: password}, &resp)
	if err != nil {
		return session.Session{}, err
	}

	return session.Session{
		Token:    resp.Token,
		Username: resp.Username,
		Balance:  resp.Balance,
	}, nil
}

func (g *AuthGateway) Register(ctx context.Context, username, password string) error {
	return g.client.Post(ctx, "/auth/register", "", credentials{Username: username, Password: password}, nil)
}
