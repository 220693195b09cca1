package assign_assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	assignmentRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/assignment"
	bookingRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/booking"
	rosterClient "github.com/glamora-dev/GLM-SchedulingService/internal/integrations/rosterservice"
)

// UseCase use case для назначения ассистента на существующее бронирование
type UseCase struct {
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	conflictFinder ConflictFinder
	rosterClient   RosterServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	conflictFinder ConflictFinder,
	rosterClient RosterServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		conflictFinder: conflictFinder,
		rosterClient:   rosterClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case назначения ассистента
// Проверка конфликтов ассистента и вставка назначения выполняются в одной
// сериализуемой транзакции - так же, как при создании бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignAssistant: booking=%d, assistant=%d", req.BookingID, req.AssistantID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignAssistant: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование ассистента в ростере
	assistant, err := uc.rosterClient.GetMaster(ctx, req.AssistantID)
	if err != nil {
		if errors.Is(err, rosterClient.ErrMasterNotFound) {
			uc.logger.Warn("AssignAssistant: assistant id=%d not found", req.AssistantID)
			return nil, ErrAssistantNotFound
		}
		uc.logger.Error("AssignAssistant: failed to get assistant id=%d: %v", req.AssistantID, err)
		return nil, fmt.Errorf("%w: failed to get assistant: %v", ErrInternal, err)
	}

	if !assistant.IsActive {
		uc.logger.Warn("AssignAssistant: assistant id=%d is inactive", req.AssistantID)
		return nil, ErrAssistantNotFound
	}

	// Переменная для хранения результата
	var result *domain.AssistantAssignment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("AssignAssistant: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("AssignAssistant: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Назначать можно только на активное бронирование
		if !booking.IsActive() {
			uc.logger.Warn("AssignAssistant: booking id=%d has status %s", req.BookingID, booking.Status)
			return ErrBookingNotActive
		}

		// Ведущий мастер не может быть своим же ассистентом
		if booking.MasterID == req.AssistantID {
			uc.logger.Warn("AssignAssistant: assistant id=%d is the lead master of booking=%d",
				req.AssistantID, req.BookingID)
			return ErrSameMasterAssistant
		}

		// 3.2. Проверяем существующие назначения: дубликаты и лимит
		assignments, err := uc.assignmentRepo.GetByBookingID(txCtx, req.BookingID)
		if err != nil {
			uc.logger.Error("AssignAssistant: failed to get assignments for booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
		}

		for _, a := range assignments {
			if a.MasterID == req.AssistantID {
				uc.logger.Warn("AssignAssistant: assistant id=%d already assigned to booking=%d",
					req.AssistantID, req.BookingID)
				return ErrAlreadyAssigned
			}
		}

		if len(assignments) >= domain.MaxAssistantsPerBooking {
			uc.logger.Warn("AssignAssistant: booking=%d already has %d assistants",
				req.BookingID, len(assignments))
			return ErrTooManyAssistants
		}

		// 3.3. Проверяем конфликты ассистента на интервал бронирования (FOR UPDATE)
		conflicts, err := uc.conflictFinder.FindForMaster(txCtx, req.AssistantID, booking.BookingDate, booking.Interval)
		if err != nil {
			uc.logger.Error("AssignAssistant: conflict check failed for assistant=%d: %v", req.AssistantID, err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			first := conflicts[0]
			uc.logger.Warn("AssignAssistant: assistant=%d conflicts with booking=%d (%s, role=%s)",
				req.AssistantID, first.BookingID, first.Interval, first.Role)
			return &domain.AssistantConflictError{
				MasterID:  req.AssistantID,
				BookingID: first.BookingID,
				Interval:  first.Interval,
				Role:      first.Role,
			}
		}

		// 3.4. Сохраняем назначение
		created, err := uc.assignmentRepo.Create(txCtx, &domain.AssistantAssignment{
			BookingID: req.BookingID,
			MasterID:  req.AssistantID,
		})
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrDuplicateAssignment) {
				return ErrAlreadyAssigned
			}
			uc.logger.Error("AssignAssistant: failed to create assignment: %v", err)
			return fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignAssistant: successfully assigned assistant=%d to booking=%d (assignment id=%d)",
		req.AssistantID, req.BookingID, result.ID)

	return &Response{
		AssignmentID: result.ID,
		BookingID:    result.BookingID,
		AssistantID:  result.MasterID,
		CreatedAt:    result.CreatedAt,
	}, nil
}
