// Package scope carries the tenant/farm pair bound to one logical
// operation. The binding is an immutable context value, so concurrent
// requests never observe each other's scope and the pair survives
// every suspension point of the operation.
package scope

import "context"

type scopeKey struct{}

// Scope identifies the tenant (and farm) a request operates on behalf of.
// Both values come from a verified credential, never from raw request
// parameters.
type Scope struct {
	TenantID uint
	FarmID   uint
}

// WithScope returns a context carrying the given tenant/farm scope.
// Data-access calls made with the returned context are narrowed to this
// scope by the repositories.
func WithScope(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// FromContext returns the scope bound to ctx, if any. ok is false for
// out-of-request code paths (migrations, seeding, platform admin jobs),
// which intentionally run unscoped.
func FromContext(ctx context.Context) (Scope, bool) {
	if ctx == nil {
		return Scope{}, false
	}
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	return sc, ok
}
