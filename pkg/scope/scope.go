package scope

import (
	"context"

	"board-srv/internal/model"
)

// Payload is the verified content of an auth token.
type Payload struct {
	UserID    string
	Username  string
	Role      string
	TokenID   string
	Issuer    string
	IssuedAt  int64
	ExpiresAt int64
}

// Manager verifies tokens into payloads. Implemented by pkg/jwt.
type Manager interface {
	Verify(token string) (Payload, error)
}

// NewScope creates a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID:   payload.UserID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

type contextKey int

const (
	payloadKey contextKey = iota
	scopeKey
)

// SetPayloadToContext stores the token payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey, payload)
}

// GetPayloadFromContext returns the token payload stored in the context.
func GetPayloadFromContext(ctx context.Context) Payload {
	if p, ok := ctx.Value(payloadKey).(Payload); ok {
		return p
	}
	return Payload{}
}

// SetScopeToContext stores the request scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the request scope stored in the context.
func GetScopeFromContext(ctx context.Context) model.Scope {
	if sc, ok := ctx.Value(scopeKey).(model.Scope); ok {
		return sc
	}
	return model.Scope{}
}
