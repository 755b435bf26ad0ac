package session

import (
	"context"
	"errors"
)

const CookieName = "session_token"

var ErrNotFound = errors.New("session not found")

// Data is the server-side state a session token resolves to.
type Data struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

// Store holds sessions keyed by an opaque token. Get returns ErrNotFound
// for unknown or expired tokens; Destroy of a missing token is not an
// error.
type Store interface {
	Create(ctx context.Context, data Data) (string, error)
	Get(ctx context.Context, token string) (*Data, error)
	Destroy(ctx context.Context, token string) error
}
