package domain

import (
	"fmt"

	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

// TimeInterval represents a [start, end) time range within a single calendar day
// Invariant: Start < End, no midnight crossing
type TimeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeInterval creates a validated time interval
func NewTimeInterval(start, end types.TimeString) (TimeInterval, error) {
	interval := TimeInterval{Start: start, End: end}
	if err := interval.Validate(); err != nil {
		return TimeInterval{}, err
	}
	return interval, nil
}

// Validate checks the start < end invariant and the HH:MM format of both bounds
func (i TimeInterval) Validate() error {
	if err := i.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidInterval, err)
	}
	if err := i.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidInterval, err)
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidInterval, i.Start, i.End)
	}
	return nil
}

// Overlaps reports whether two half-open intervals intersect
// Back-to-back intervals (one ending exactly where the other starts) do NOT overlap
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// Contains reports whether other lies fully inside i
func (i TimeInterval) Contains(other TimeInterval) bool {
	return !other.Start.IsBefore(i.Start) && !i.End.IsBefore(other.End)
}

// DurationMinutes returns the interval length in minutes
func (i TimeInterval) DurationMinutes() int {
	return i.Start.MinutesUntil(i.End)
}

// String returns the interval as "HH:MM-HH:MM"
func (i TimeInterval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}

// MergeIntervals склеивает пересекающиеся и соприкасающиеся интервалы
// На вход требует интервалы, отсортированные по началу; вход не модифицирует
func MergeIntervals(sorted []TimeInterval) []TimeInterval {
	if len(sorted) == 0 {
		return []TimeInterval{}
	}

	merged := make([]TimeInterval, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		// Соприкасающиеся (end == start) тоже склеиваем
		if !current.End.IsBefore(next.Start) {
			if current.End.IsBefore(next.End) {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}

// Subtract возвращает свободные под-интервалы окна после вычитания busy
// busy должен быть отсортирован по началу; пересекающиеся и соприкасающиеся
// busy-интервалы предварительно склеиваются. Пустой busy даёт [window]
func Subtract(window TimeInterval, busy []TimeInterval) []TimeInterval {
	free := make([]TimeInterval, 0, len(busy)+1)
	cursor := window.Start

	for _, b := range MergeIntervals(busy) {
		// Интервалы целиком вне окна не влияют на результат
		if !b.Overlaps(window) {
			continue
		}

		if cursor.IsBefore(b.Start) {
			free = append(free, TimeInterval{Start: cursor, End: b.Start})
		}
		if cursor.IsBefore(b.End) {
			cursor = b.End
		}
	}

	if cursor.IsBefore(window.End) {
		free = append(free, TimeInterval{Start: cursor, End: window.End})
	}

	return free
}
