package domain

// WorkingHours расписание мастера на конкретную дату:
// набор непересекающихся интервалов, когда мастер доступен для записи
// Поставляется внешним roster-сервисом, read-only
type WorkingHours struct {
	Intervals []TimeInterval
}

// IsEmpty returns true when the master has no schedulable time that day
func (w WorkingHours) IsEmpty() bool {
	return len(w.Intervals) == 0
}

// Covers returns true if the candidate interval lies fully inside one of the
// working intervals
func (w WorkingHours) Covers(candidate TimeInterval) bool {
	for _, interval := range w.Intervals {
		if interval.Contains(candidate) {
			return true
		}
	}
	return false
}
