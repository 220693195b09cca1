package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

func mustInterval(t *testing.T, start, end string) TimeInterval {
	t.Helper()
	interval, err := NewTimeInterval(types.TimeString(start), types.TimeString(end))
	require.NoError(t, err)
	return interval
}

func TestNewTimeInterval(t *testing.T) {
	t.Run("rejects start after end", func(t *testing.T) {
		_, err := NewTimeInterval("12:00", "11:00")
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("rejects zero-length interval", func(t *testing.T) {
		_, err := NewTimeInterval("12:00", "12:00")
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("rejects malformed bounds", func(t *testing.T) {
		_, err := NewTimeInterval("noon", "13:00")
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestTimeIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        TimeInterval
		b        TimeInterval
		overlaps bool
	}{
		{
			name:     "partial overlap",
			a:        mustInterval(t, "09:00", "11:00"),
			b:        mustInterval(t, "10:00", "12:00"),
			overlaps: true,
		},
		{
			name:     "full containment",
			a:        mustInterval(t, "09:00", "17:00"),
			b:        mustInterval(t, "12:00", "13:00"),
			overlaps: true,
		},
		{
			name:     "identical intervals",
			a:        mustInterval(t, "10:00", "11:00"),
			b:        mustInterval(t, "10:00", "11:00"),
			overlaps: true,
		},
		{
			name:     "back-to-back do not overlap",
			a:        mustInterval(t, "09:00", "10:00"),
			b:        mustInterval(t, "10:00", "11:00"),
			overlaps: false,
		},
		{
			name:     "fully disjoint",
			a:        mustInterval(t, "09:00", "10:00"),
			b:        mustInterval(t, "14:00", "15:00"),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeIntervalContains(t *testing.T) {
	outer := mustInterval(t, "09:00", "17:00")

	assert.True(t, outer.Contains(mustInterval(t, "09:00", "17:00")))
	assert.True(t, outer.Contains(mustInterval(t, "12:00", "13:00")))
	assert.False(t, outer.Contains(mustInterval(t, "08:00", "10:00")))
	assert.False(t, outer.Contains(mustInterval(t, "16:00", "18:00")))
}

func TestMergeIntervals(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, MergeIntervals(nil))
	})

	t.Run("merges overlapping and touching", func(t *testing.T) {
		input := []TimeInterval{
			mustInterval(t, "09:00", "10:00"),
			mustInterval(t, "09:30", "11:00"),
			mustInterval(t, "11:00", "12:00"),
			mustInterval(t, "14:00", "15:00"),
		}

		merged := MergeIntervals(input)

		require.Len(t, merged, 2)
		assert.Equal(t, mustInterval(t, "09:00", "12:00"), merged[0])
		assert.Equal(t, mustInterval(t, "14:00", "15:00"), merged[1])
	})

	t.Run("nested interval is absorbed", func(t *testing.T) {
		input := []TimeInterval{
			mustInterval(t, "09:00", "17:00"),
			mustInterval(t, "10:00", "11:00"),
		}

		merged := MergeIntervals(input)

		require.Len(t, merged, 1)
		assert.Equal(t, mustInterval(t, "09:00", "17:00"), merged[0])
	})
}

func TestSubtract(t *testing.T) {
	window := mustInterval(t, "09:00", "17:00")

	t.Run("empty busy returns the whole window", func(t *testing.T) {
		free := Subtract(window, nil)

		require.Len(t, free, 1)
		assert.Equal(t, window, free[0])
	})

	t.Run("busy in the middle splits the window", func(t *testing.T) {
		busy := []TimeInterval{mustInterval(t, "12:00", "13:00")}

		free := Subtract(window, busy)

		require.Len(t, free, 2)
		assert.Equal(t, mustInterval(t, "09:00", "12:00"), free[0])
		assert.Equal(t, mustInterval(t, "13:00", "17:00"), free[1])
	})

	t.Run("busy at the window edges", func(t *testing.T) {
		busy := []TimeInterval{
			mustInterval(t, "09:00", "10:00"),
			mustInterval(t, "16:00", "17:00"),
		}

		free := Subtract(window, busy)

		require.Len(t, free, 1)
		assert.Equal(t, mustInterval(t, "10:00", "16:00"), free[0])
	})

	t.Run("busy covering the window leaves nothing", func(t *testing.T) {
		busy := []TimeInterval{mustInterval(t, "08:00", "18:00")}

		assert.Empty(t, Subtract(window, busy))
	})

	t.Run("busy outside the window is ignored", func(t *testing.T) {
		busy := []TimeInterval{mustInterval(t, "07:00", "08:00")}

		free := Subtract(window, busy)

		require.Len(t, free, 1)
		assert.Equal(t, window, free[0])
	})

	t.Run("free plus busy reconstructs the window", func(t *testing.T) {
		busy := []TimeInterval{
			mustInterval(t, "09:30", "10:30"),
			mustInterval(t, "10:30", "11:00"),
			mustInterval(t, "13:00", "14:30"),
		}

		free := Subtract(window, busy)

		// Суммарная длительность свободного и занятого равна длительности окна
		total := 0
		for _, f := range free {
			total += f.DurationMinutes()
		}
		for _, b := range MergeIntervals(busy) {
			total += b.DurationMinutes()
		}
		assert.Equal(t, window.DurationMinutes(), total)
	})
}
