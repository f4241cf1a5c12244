package mock

import (
	"context"

	"github.com/enesy/bookmarker"
)

var _ bookmarker.PreferenceService = (*PreferenceService)(nil)

// PreferenceService is a mock implementation of bookmarker.PreferenceService.
type PreferenceService struct {
	GetPreferenceFn func(ctx context.Context, key, def string) (string, error)
	SetPreferenceFn func(ctx context.Context, key, value string) error
}

func (s *PreferenceService) GetPreference(ctx context.Context, key, def string) (string, error) {
	return s.GetPreferenceFn(ctx, key, def)
}

func (s *PreferenceService) SetPreference(ctx context.Context, key, value string) error {
	return s.SetPreferenceFn(ctx, key, value)
}
