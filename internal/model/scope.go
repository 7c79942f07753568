package model

import "context"

// Scope identifies the caller of a use case.
type Scope struct {
	UserID int64
}

type scopeCtxKey struct{}

// SetScopeToContext stores the caller scope on ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the caller scope stored on ctx.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok
}
