package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/dbmetrics"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/psqlbuilder"
)

var configColumns = []string{
	"id",
	"location_id",
	"service_id",
	"slot_granularity_minutes",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурацией расписания локаций
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// 1. Конфигурация для конкретной услуги на локации (location_id, service_id)
// 2. Конфигурация локации целиком (location_id, NULL)
// Если ничего не найдено, возвращает ErrConfigNotFound
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, locationID int64, serviceID *int64) (*domain.LocationConfig, error) {
	if serviceID != nil {
		cfg, err := r.getOne(ctx, locationID, serviceID)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, err
		}
	}

	return r.getOne(ctx, locationID, nil)
}

// getOne получает конфигурацию по точному совпадению (location_id, service_id)
func (r *Repository) getOne(ctx context.Context, locationID int64, serviceID *int64) (*domain.LocationConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(configColumns...).
		From("location_config").
		Where(squirrel.Eq{"location_id": locationID})

	if serviceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_id": *serviceID})
	} else {
		selectBuilder = selectBuilder.Where("service_id IS NULL")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.LocationConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.LocationID,
		&cfg.ServiceID,
		&cfg.SlotGranularityMinutes,
		&cfg.AdvanceBookingDays,
		&cfg.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// GetAllByLocation получает все конфигурации локации (общую и сервис-специфичные)
func (r *Repository) GetAllByLocation(ctx context.Context, locationID int64) ([]*domain.LocationConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("location_config").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("service_id ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByLocation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.LocationConfig, 0)
	for rows.Next() {
		var cfg domain.LocationConfig
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&cfg.ID,
			&cfg.LocationID,
			&cfg.ServiceID,
			&cfg.SlotGranularityMinutes,
			&cfg.AdvanceBookingDays,
			&cfg.MinBookingNoticeMinutes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByLocation - scan row: %v", ErrScanRow, err)
		}

		cfg.CreatedAt = createdAt.Time
		cfg.UpdatedAt = updatedAt.Time
		configs = append(configs, &cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByLocation - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// Upsert создает или обновляет конфигурацию по ключу (location_id, service_id)
func (r *Repository) Upsert(ctx context.Context, cfg *domain.LocationConfig) (*domain.LocationConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("location_config").
		Columns(
			"location_id",
			"service_id",
			"slot_granularity_minutes",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			cfg.LocationID,
			cfg.ServiceID,
			cfg.SlotGranularityMinutes,
			cfg.AdvanceBookingDays,
			cfg.MinBookingNoticeMinutes,
		).
		Suffix(`ON CONFLICT (location_id, COALESCE(service_id, 0)) DO UPDATE SET
			slot_granularity_minutes = EXCLUDED.slot_granularity_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}
