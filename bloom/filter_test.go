package bloom_test

import (
	"fmt"
	"testing"

	"github.com/enesy/bookmarker/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// A URL that was never captured answers false
	assert.False(t, f.Test("https://example.com/article"))

	f.Add("https://example.com/article")
	assert.True(t, f.Test("https://example.com/article"))

	// Other URLs stay unaffected
	assert.False(t, f.Test("https://example.com/other-article"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("https://example.com/a")
	f.Add("https://example.com/b")
	f.Add("https://example.com/c")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Re-capturing the same URL must not change the filter
	url := "https://example.com/article"
	f.Add(url)
	countAfterFirst := f.EstimatedCount()

	f.Add(url)
	f.Add(url)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Test(url))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numCaptured = 10000
		fpRate      = 0.01
		numLookups  = 10000
	)

	f := bloom.NewFilter(numCaptured, fpRate)
	for i := range numCaptured {
		f.Add(fmt.Sprintf("https://example.com/saved/%d", i))
	}

	// Lookups for URLs that were never captured should rarely hit.
	// Allow up to 2% to account for statistical variance.
	falsePositives := 0
	for i := range numLookups {
		if f.Test(fmt.Sprintf("https://example.com/unsaved/%d", i)) {
			falsePositives++
		}
	}

	actualRate := float64(falsePositives) / float64(numLookups)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
