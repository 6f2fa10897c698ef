// Package auth carries the opaque authenticated-user handle through
// request contexts. Session verification itself belongs to the external
// identity provider; the server only needs to know who is acting.
package auth

import "context"

// User is the authenticated user performing a request.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type contextKey string

const userKey contextKey = "authUser"

// WithUser returns a context carrying the acting user.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// FromContext retrieves the acting user, if any.
func FromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok
}
