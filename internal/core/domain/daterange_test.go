package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHalfYear(t *testing.T) {
	t.Run("first half", func(t *testing.T) {
		r := HalfYear(2024, FirstHalf)
		assert.Equal(t, "2024-01-01T00:00:00Z", r.PublishedAfter())
		assert.Equal(t, "2024-06-30T23:59:59Z", r.PublishedBefore())
		assert.Equal(t, "2024-01-01 to 2024-06-30", r.String())
	})

	t.Run("second half", func(t *testing.T) {
		r := HalfYear(2023, SecondHalf)
		assert.Equal(t, "2023-07-01T00:00:00Z", r.PublishedAfter())
		assert.Equal(t, "2023-12-31T23:59:59Z", r.PublishedBefore())
	})

	t.Run("same half is equal", func(t *testing.T) {
		assert.Equal(t, HalfYear(2024, FirstHalf), HalfYear(2024, FirstHalf))
		assert.NotEqual(t, HalfYear(2024, FirstHalf), HalfYear(2024, SecondHalf))
		assert.Equal(t, time.UTC, HalfYear(2024, FirstHalf).Start.Location())
	})
}
