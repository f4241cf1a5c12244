package bookmarker

import "context"

// AuthService yields the opaque identifier of the signed-in user. Identity
// lives with an external provider; this interface is the only surface the
// sync layer depends on. An empty id means signed out.
type AuthService interface {
	CurrentUserID(ctx context.Context) (string, error)
}
