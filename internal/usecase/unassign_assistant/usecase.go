package unassign_assistant

import (
	"context"
	"errors"
	"fmt"

	assignmentRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/assignment"
	bookingRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/booking"
)

// UseCase use case для снятия ассистента с бронирования
// Снятие немедленно освобождает интервал ассистента; статус бронирования
// не важен - удаление лишнего назначения всегда безопасно
type UseCase struct {
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// Execute выполняет use case снятия ассистента
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("UnassignAssistant: booking=%d, assistant=%d", req.BookingID, req.AssistantID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UnassignAssistant: validation failed: %v", err)
		return err
	}

	// 2. Проверяем существование бронирования
	if _, err := uc.bookingRepo.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UnassignAssistant: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("UnassignAssistant: failed to get booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Ищем назначение ассистента на бронирование
	assignments, err := uc.assignmentRepo.GetByBookingID(ctx, req.BookingID)
	if err != nil {
		uc.logger.Error("UnassignAssistant: failed to get assignments for booking=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	var assignmentID int64
	for _, a := range assignments {
		if a.MasterID == req.AssistantID {
			assignmentID = a.ID
			break
		}
	}
	if assignmentID == 0 {
		uc.logger.Warn("UnassignAssistant: assistant=%d is not assigned to booking=%d",
			req.AssistantID, req.BookingID)
		return ErrAssignmentNotFound
	}

	// 4. Удаляем назначение
	// Конкурентное снятие того же назначения получит ErrAssignmentNotFound
	if err := uc.assignmentRepo.Delete(ctx, assignmentID); err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			return ErrAssignmentNotFound
		}
		uc.logger.Error("UnassignAssistant: failed to delete assignment id=%d: %v", assignmentID, err)
		return fmt.Errorf("%w: failed to delete assignment: %v", ErrInternal, err)
	}

	uc.logger.Info("UnassignAssistant: successfully unassigned assistant=%d from booking=%d",
		req.AssistantID, req.BookingID)
	return nil
}
