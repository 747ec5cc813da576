package ports

import "context"

// TokenStore wraps the persistent key/value storage for bearer tokens.
// Get returns an empty string when the named token is absent; callers treat
// decode failures the same way. No well-formedness validation happens here.
type TokenStore interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Clear(ctx context.Context, name string) error
}
