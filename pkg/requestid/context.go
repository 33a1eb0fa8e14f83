package requestid

import "context"

type contextKey struct{}

func WithContext(ctx context.Context, id ID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id, or "" when none is set.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, ok := ctx.Value(contextKey{}).(ID)
	if !ok {
		return ""
	}
	return id.String()
}
