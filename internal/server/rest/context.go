package rest

import (
	"context"

	"github.com/taskhub/taskhub/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

func withIdentity(ctx context.Context, id *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the verified identity attached by the
// authorization middleware, if any.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*auth.Identity)
	return id, ok
}
