package assignment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/dbmetrics"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/psqlbuilder"
)

// pqUniqueViolation код нарушения уникального ограничения Postgres
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с назначениями ассистентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает назначение ассистента на бронирование
// Должен вызываться внутри той же транзакции, что и проверка конфликтов
// ассистента, иначе возможна гонка
func (r *Repository) Create(ctx context.Context, assignment *domain.AssistantAssignment) (*domain.AssistantAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_assistants").
		Columns("booking_id", "master_id").
		Values(assignment.BookingID, assignment.MasterID).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&assignment.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateAssignment
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	assignment.CreatedAt = createdAt.Time

	return assignment, nil
}

// GetBookingsByAssistant получает подтверждённые бронирования на дату,
// в которых мастер занят как ассистент
// Внутри транзакции блокирует строки бронирований через FOR UPDATE OF b
func (r *Repository) GetBookingsByAssistant(ctx context.Context, masterID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.location_id",
		"b.master_id",
		"b.client_id",
		"b.service_id",
		"b.booking_date",
		"b.start_time",
		"b.end_time",
		"b.status",
	).
		From("booking_assistants ba").
		Join("bookings b ON b.id = ba.booking_id").
		Where(squirrel.Eq{
			"ba.master_id":   masterID,
			"b.booking_date": date,
			"b.status":       domain.StatusConfirmed,
		}).
		OrderBy("b.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookingsByAssistant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookingsByAssistant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.LocationID,
			&booking.MasterID,
			&booking.ClientID,
			&booking.ServiceID,
			&booking.BookingDate,
			&booking.Interval.Start,
			&booking.Interval.End,
			&booking.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBookingsByAssistant - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookingsByAssistant - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetByBookingID получает все назначения ассистентов на бронирование
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.AssistantAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "master_id", "created_at").
		From("booking_assistants").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make([]*domain.AssistantAssignment, 0)
	for rows.Next() {
		var assignment domain.AssistantAssignment
		var createdAt sql.NullTime

		err := rows.Scan(
			&assignment.ID,
			&assignment.BookingID,
			&assignment.MasterID,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}

		assignment.CreatedAt = createdAt.Time
		assignments = append(assignments, &assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return assignments, nil
}

// Delete удаляет назначение ассистента
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_assistants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}
