package mock

import (
	"context"

	"github.com/enesy/bookmarker"
)

var _ bookmarker.AuthService = (*AuthService)(nil)

// AuthService is a mock implementation of bookmarker.AuthService.
type AuthService struct {
	CurrentUserIDFn func(ctx context.Context) (string, error)
}

func (s *AuthService) CurrentUserID(ctx context.Context) (string, error) {
	return s.CurrentUserIDFn(ctx)
}
