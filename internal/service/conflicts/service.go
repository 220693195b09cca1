package conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
)

// Service детектор конфликтов расписания
// Мастер занят в интервале, если он ведёт пересекающееся подтверждённое
// бронирование ИЛИ назначен на него ассистентом - проверяются обе роли
type Service struct {
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	logger         Logger
}

// NewService создает новый экземпляр детектора конфликтов
func NewService(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// FindForMaster возвращает все конфликты кандидата с занятостью мастера на дату
// Результат - плоский список: сначала конфликты в роли ведущего, затем в роли
// ассистента; пустой список означает, что мастер свободен весь интервал
//
// Вызов внутри транзакции блокирует прочитанные бронирования (FOR UPDATE в
// репозиториях) - так проверка и последующая вставка становятся атомарными
func (s *Service) FindForMaster(ctx context.Context, masterID int64, date time.Time, candidate domain.TimeInterval) ([]domain.ConflictEntry, error) {
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	primaryBookings, err := s.bookingRepo.GetByMasterAndDate(ctx, masterID, date)
	if err != nil {
		s.logger.Error("FindForMaster: failed to get primary bookings for master=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: FindForMaster - get primary bookings: %v", ErrInternal, err)
	}

	assistantBookings, err := s.assignmentRepo.GetBookingsByAssistant(ctx, masterID, date)
	if err != nil {
		s.logger.Error("FindForMaster: failed to get assistant bookings for master=%d: %v", masterID, err)
		return nil, fmt.Errorf("%w: FindForMaster - get assistant bookings: %v", ErrInternal, err)
	}

	entries := domain.FindOverlapping(candidate, primaryBookings, domain.RolePrimary)
	entries = append(entries, domain.FindOverlapping(candidate, assistantBookings, domain.RoleAssistant)...)

	return entries, nil
}

// FindForMasters batch-проверка: один кандидат против нескольких мастеров
// Возвращает карту мастер -> конфликты; мастера без конфликтов присутствуют
// в карте с пустым списком, чтобы вызывающая сторона видела «кто свободен»
func (s *Service) FindForMasters(ctx context.Context, masterIDs []int64, date time.Time, candidate domain.TimeInterval) (map[int64][]domain.ConflictEntry, error) {
	result := make(map[int64][]domain.ConflictEntry, len(masterIDs))

	for _, masterID := range masterIDs {
		// Повторное вхождение ID не требует повторной проверки
		if _, ok := result[masterID]; ok {
			continue
		}

		entries, err := s.FindForMaster(ctx, masterID, date, candidate)
		if err != nil {
			return nil, err
		}
		result[masterID] = entries
	}

	return result, nil
}
