package bookmarker

import "context"

// Preference keys. The preference store is a flat key-value table; values
// are strings and booleans are stored as "true"/"false".
const (
	PrefAutoSync   = "auto_sync"
	PrefLanguage   = "language"
	PrefTheme      = "theme"
	PrefOnboarding = "onboarding_done"
)

// PreferenceService stores user preferences.
type PreferenceService interface {
	// GetPreference returns the value for key, or def when unset.
	GetPreference(ctx context.Context, key, def string) (string, error)

	// SetPreference stores the value for key, replacing any prior value.
	SetPreference(ctx context.Context, key, value string) error
}
