package get_availability

import (
	"sort"
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

// collectBusyIntervals собирает занятость мастера из бронирований обеих ролей
// Два списка объединяются, неактивные бронирования отбрасываются, результат
// сортируется по началу и схлопывается в непересекающиеся интервалы
func collectBusyIntervals(primary, assistant []*domain.Booking) []domain.TimeInterval {
	busy := make([]domain.TimeInterval, 0, len(primary)+len(assistant))

	for _, booking := range primary {
		if !booking.IsActive() {
			continue
		}
		busy = append(busy, booking.Interval)
	}
	for _, booking := range assistant {
		if !booking.IsActive() {
			continue
		}
		busy = append(busy, booking.Interval)
	}

	sort.Slice(busy, func(i, j int) bool {
		return busy[i].Start.IsBefore(busy[j].Start)
	})

	return domain.MergeIntervals(busy)
}

// generateSlots генерирует сетку слотов по рабочим сменам мастера
// Внутри каждой смены слоты идут с фиксированным шагом granularity от начала
// смены; неполный хвостовой слот отбрасывается. Слот свободен, если не
// пересекается ни с одним занятым интервалом (строгие неравенства, стык
// «конец одного - начало другого» пересечением не считается)
func generateSlots(hours domain.WorkingHours, granularity int, busy []domain.TimeInterval) ([]Slot, error) {
	slots := make([]Slot, 0)

	for _, shift := range hours.Intervals {
		cursor := shift.Start

		for cursor.IsBefore(shift.End) {
			slotEnd, err := cursor.AddMinutes(granularity)
			if err != nil {
				// Шаг вышел за пределы суток - смена исчерпана
				break
			}
			if slotEnd.IsAfter(shift.End) {
				break
			}

			slotInterval := domain.TimeInterval{Start: cursor, End: slotEnd}

			slots = append(slots, Slot{
				StartTime:   cursor,
				EndTime:     slotEnd,
				IsAvailable: !overlapsAny(slotInterval, busy),
			})

			cursor = slotEnd
		}
	}

	return slots, nil
}

// buildFreeWindows вычитает занятость из каждой смены и возвращает
// непрерывные свободные окна с реальными границами (без привязки к сетке)
func buildFreeWindows(hours domain.WorkingHours, busy []domain.TimeInterval) []FreeWindow {
	windows := make([]FreeWindow, 0)

	for _, shift := range hours.Intervals {
		for _, free := range domain.Subtract(shift, busy) {
			windows = append(windows, FreeWindow{
				StartTime: free.Start,
				EndTime:   free.End,
			})
		}
	}

	return windows
}

// filterPastSlots для сегодняшней даты убирает слоты, начинающиеся раньше
// минимально допустимого времени (текущее время + minBookingNoticeMinutes)
// Для будущих дат возвращает слоты без изменений
func filterPastSlots(slots []Slot, requestDate time.Time, now time.Time, minBookingNoticeMinutes int) []Slot {
	if !isSameDay(requestDate, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		// Минимальное время вышло за пределы суток - сегодня бронировать уже нечего
		return []Slot{}
	}

	filtered := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if !slot.StartTime.IsBefore(minAllowedTime) {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}

// overlapsAny проверяет пересечение кандидата хотя бы с одним интервалом
func overlapsAny(candidate domain.TimeInterval, intervals []domain.TimeInterval) bool {
	for _, iv := range intervals {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}
