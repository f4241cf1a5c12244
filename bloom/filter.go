// Package bloom provides a probabilistic guard over previously captured
// URLs. The capture flow seeds a filter from the local store once and
// consults it before every save, so the common "never seen this URL"
// case answers without touching the database.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter remembers which URLs have been captured. A negative answer is
// exact; a positive answer may be a false positive and must be confirmed
// against the store before a save is rejected.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a captured URL.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether the URL may have been captured before.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
