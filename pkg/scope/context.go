// Package scope carries the authenticated caller through a request context.
package scope

import (
	"context"

	"deadline-sync/internal/model"
)

type scopeCtxKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	if !ok || sc.UserID == "" {
		return model.Scope{}, false
	}
	return sc, true
}
