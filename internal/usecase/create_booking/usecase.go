package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	configRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/config"
	clientClient "github.com/glamora-dev/GLM-SchedulingService/internal/integrations/clientservice"
	rosterClient "github.com/glamora-dev/GLM-SchedulingService/internal/integrations/rosterservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	configRepo     ConfigRepository
	conflictFinder ConflictFinder
	rosterClient   RosterServiceClient
	clientClient   ClientServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	configRepo ConfigRepository,
	conflictFinder ConflictFinder,
	rosterClient RosterServiceClient,
	clientClient ClientServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		configRepo:     configRepo,
		conflictFinder: conflictFinder,
		rosterClient:   rosterClient,
		clientClient:   clientClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции:
// из двух конкурентных запросов на пересекающийся интервал фиксируется ровно один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, master=%d, service=%d, date=%s, interval=%s-%s",
		req.ClientID, req.MasterID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Интервал прошёл валидацию выше
	interval := domain.TimeInterval{Start: req.StartTime, End: req.EndTime}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем ведущего мастера из RosterService
	master, err := uc.rosterClient.GetMaster(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, rosterClient.ErrMasterNotFound) {
			uc.logger.Warn("CreateBooking: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("CreateBooking: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	if !master.IsActive {
		uc.logger.Warn("CreateBooking: master id=%d is inactive", req.MasterID)
		return nil, ErrMasterInactive
	}

	// 4. Проверяем существование каждого ассистента
	for _, assistantID := range req.AssistantIDs {
		assistant, err := uc.rosterClient.GetMaster(ctx, assistantID)
		if err != nil {
			if errors.Is(err, rosterClient.ErrMasterNotFound) {
				uc.logger.Warn("CreateBooking: assistant id=%d not found", assistantID)
				return nil, fmt.Errorf("%w: id=%d", ErrAssistantNotFound, assistantID)
			}
			uc.logger.Error("CreateBooking: failed to get assistant id=%d: %v", assistantID, err)
			return nil, fmt.Errorf("%w: failed to get assistant: %v", ErrInternal, err)
		}
		if !assistant.IsActive {
			uc.logger.Warn("CreateBooking: assistant id=%d is inactive", assistantID)
			return nil, fmt.Errorf("%w: id=%d", ErrAssistantNotFound, assistantID)
		}
	}

	// 5. Получаем конфигурацию расписания с учетом иерархии
	config, err := uc.configRepo.GetConfigWithHierarchy(ctx, master.LocationID, &req.ServiceID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("CreateBooking: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = domain.DefaultLocationConfig()
		uc.logger.Info("CreateBooking: using default config for location=%d", master.LocationID)
	} else {
		uc.logger.Info("CreateBooking: using config id=%d", config.ID)
	}

	// 6. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 7. Валидация времени бронирования (minBookingNoticeMinutes)
	if err := validateBookingTime(req.Date, req.StartTime, now, config.MinBookingNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 8. Проверяем попадание интервала в рабочие часы мастера
	// Проверка рекомендательная: администратор может записать вне смены,
	// явно указав allowOutsideHours
	if !req.AllowOutsideHours {
		if err := uc.checkWorkingHours(ctx, req.MasterID, req.Date, interval); err != nil {
			return nil, err
		}
	}

	// 9. Получаем профиль клиента для денормализации
	// При недоступности ClientService бронирование создается без снимка
	var clientName, clientPhone *string
	profile, err := uc.clientClient.GetProfileWithGracefulDegradation(ctx, req.ClientID)
	switch {
	case err == nil:
		clientName = &profile.Name
		clientPhone = &profile.Phone
	case errors.Is(err, clientClient.ErrClientNotFound):
		uc.logger.Info("CreateBooking: client id=%d has no profile, booking without snapshot", req.ClientID)
	case errors.Is(err, clientClient.ErrServiceDegraded):
		uc.logger.Warn("CreateBooking: client service degraded, booking without snapshot for client=%d", req.ClientID)
	default:
		uc.logger.Error("CreateBooking: failed to get client profile id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client profile: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 10. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Проверяем конфликты ведущего мастера с блокировкой (FOR UPDATE)
		conflicts, err := uc.conflictFinder.FindForMaster(txCtx, req.MasterID, req.Date, interval)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed for master=%d: %v", req.MasterID, err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: master=%d has %d conflicts on %s %s",
				req.MasterID, len(conflicts), req.Date.Format(domain.DateFormat), interval)
			return ErrSlotNotAvailable
		}

		// 10.2. Проверяем конфликты каждого ассистента
		for _, assistantID := range req.AssistantIDs {
			conflicts, err := uc.conflictFinder.FindForMaster(txCtx, assistantID, req.Date, interval)
			if err != nil {
				uc.logger.Error("CreateBooking: conflict check failed for assistant=%d: %v", assistantID, err)
				return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
			}
			if len(conflicts) > 0 {
				first := conflicts[0]
				uc.logger.Warn("CreateBooking: assistant=%d conflicts with booking=%d (%s, role=%s)",
					assistantID, first.BookingID, first.Interval, first.Role)
				return &domain.AssistantConflictError{
					MasterID:  assistantID,
					BookingID: first.BookingID,
					Interval:  first.Interval,
					Role:      first.Role,
				}
			}
		}

		// 10.3. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			LocationID:  master.LocationID,
			MasterID:    req.MasterID,
			ClientID:    req.ClientID,
			ServiceID:   req.ServiceID,
			BookingDate: req.Date,
			Interval:    interval,
			Status:      domain.StatusConfirmed,
			// Денормализация данных услуги
			ServiceName:  req.ServiceName,
			ServicePrice: req.ServicePrice,
			// Денормализация данных клиента
			ClientName:  clientName,
			ClientPhone: clientPhone,
			// Заметки
			Notes: req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 10.4. Сохраняем назначения ассистентов
		for _, assistantID := range req.AssistantIDs {
			if _, err := uc.assignmentRepo.Create(txCtx, &domain.AssistantAssignment{
				BookingID: created.ID,
				MasterID:  assistantID,
			}); err != nil {
				uc.logger.Error("CreateBooking: failed to assign assistant=%d: %v", assistantID, err)
				return fmt.Errorf("%w: failed to assign assistant: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d with %d assistants",
		result.ID, len(req.AssistantIDs))

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		LocationID:   result.LocationID,
		MasterID:     result.MasterID,
		ClientID:     result.ClientID,
		ServiceID:    result.ServiceID,
		BookingDate:  result.BookingDate,
		StartTime:    result.Interval.Start,
		EndTime:      result.Interval.End,
		Status:       string(result.Status),
		AssistantIDs: req.AssistantIDs,
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		ClientName:   result.ClientName,
		ClientPhone:  result.ClientPhone,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// checkWorkingHours проверяет, что интервал полностью покрыт одной из смен мастера
// Недоступность ростера не повод записывать вслепую - возвращаем ошибку
func (uc *UseCase) checkWorkingHours(ctx context.Context, masterID int64, date time.Time, interval domain.TimeInterval) error {
	rosterHours, err := uc.rosterClient.GetWorkingHoursWithGracefulDegradation(ctx, masterID, date)
	if err != nil {
		if errors.Is(err, rosterClient.ErrServiceDegraded) {
			uc.logger.Error("CreateBooking: roster degraded, refusing to book blindly for master=%d", masterID)
			return fmt.Errorf("%w: %v", ErrRosterUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to get working hours for master=%d: %v", masterID, err)
		return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	workingHours, err := rosterHours.ToDomain()
	if err != nil {
		uc.logger.Error("CreateBooking: invalid working hours for master=%d: %v", masterID, err)
		return fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}

	if !workingHours.Covers(interval) {
		uc.logger.Warn("CreateBooking: interval %s is outside working hours of master=%d on %s",
			interval, masterID, date.Format(domain.DateFormat))
		return ErrOutsideWorkingHours
	}

	return nil
}
