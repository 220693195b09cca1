package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	configRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/config"
	rosterClient "github.com/glamora-dev/GLM-SchedulingService/internal/integrations/rosterservice"
)

// UseCase use case для получения доступных слотов мастера
type UseCase struct {
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	configRepo     ConfigRepository
	rosterClient   RosterServiceClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	configRepo ConfigRepository,
	rosterClient RosterServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		configRepo:     configRepo,
		rosterClient:   rosterClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Операция только читает данные: её можно безопасно повторять
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: master=%d, date=%s",
		req.MasterID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем мастера из RosterService
	master, err := uc.rosterClient.GetMaster(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, rosterClient.ErrMasterNotFound) {
			uc.logger.Warn("GetAvailability: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("GetAvailability: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	// 4. Получаем конфигурацию расписания с учетом иерархии
	config, err := uc.configRepo.GetConfigWithHierarchy(ctx, master.LocationID, req.ServiceID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailability: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = domain.DefaultLocationConfig()
		uc.logger.Info("GetAvailability: using default config for location=%d", master.LocationID)
	} else {
		uc.logger.Info("GetAvailability: using config id=%d", config.ID)
	}

	// Шаг сетки: явный параметр запроса приоритетнее конфигурации
	granularity := config.SlotGranularityMinutes
	if req.GranularityMinutes != nil {
		granularity = *req.GranularityMinutes
	}

	// 5. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 6. Получаем рабочие часы мастера на дату
	// Недоступность RosterService деградирует до пустого расписания:
	// чтение отвечает «слотов нет» вместо ошибки
	rosterHours, err := uc.rosterClient.GetWorkingHoursWithGracefulDegradation(ctx, req.MasterID, req.Date)
	if err != nil {
		if errors.Is(err, rosterClient.ErrServiceDegraded) {
			uc.logger.Warn("GetAvailability: roster degraded for master=%d, returning empty availability", req.MasterID)
			return &Response{
				MasterID:           req.MasterID,
				Date:               req.Date,
				GranularityMinutes: granularity,
				Slots:              []Slot{},
				FreeWindows:        []FreeWindow{},
			}, nil
		}
		uc.logger.Error("GetAvailability: failed to get working hours for master=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	workingHours, err := rosterHours.ToDomain()
	if err != nil {
		uc.logger.Error("GetAvailability: invalid working hours for master=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}

	if workingHours.IsEmpty() {
		uc.logger.Info("GetAvailability: master=%d has no working hours on %s",
			req.MasterID, req.Date.Format(domain.DateFormat))
		return &Response{
			MasterID:           req.MasterID,
			Date:               req.Date,
			GranularityMinutes: granularity,
			Slots:              []Slot{},
			FreeWindows:        []FreeWindow{},
		}, nil
	}

	// 7. Получаем занятость мастера в обеих ролях
	primaryBookings, err := uc.bookingRepo.GetByMasterAndDate(ctx, req.MasterID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get primary bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get primary bookings: %v", ErrInternal, err)
	}

	assistantBookings, err := uc.assignmentRepo.GetBookingsByAssistant(ctx, req.MasterID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get assistant bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get assistant bookings: %v", ErrInternal, err)
	}

	busy := collectBusyIntervals(primaryBookings, assistantBookings)

	// 8. Генерируем сетку слотов по сменам
	slots, err := generateSlots(workingHours, granularity, busy)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 9. Для сегодняшней даты убираем слоты, нарушающие minBookingNoticeMinutes
	slots = filterPastSlots(slots, req.Date, now, config.MinBookingNoticeMinutes)

	// 10. Вычисляем свободные окна
	freeWindows := buildFreeWindows(workingHours, busy)

	uc.logger.Info("GetAvailability: master=%d, date=%s: %d slots, %d free windows",
		req.MasterID, req.Date.Format(domain.DateFormat), len(slots), len(freeWindows))

	return &Response{
		MasterID:           req.MasterID,
		Date:               req.Date,
		GranularityMinutes: granularity,
		Slots:              slots,
		FreeWindows:        freeWindows,
	}, nil
}
