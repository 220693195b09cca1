package get_location_bookings

import (
	"context"

	"github.com/glamora-dev/GLM-SchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	GetLocationBookings(ctx context.Context, req *models.GetLocationBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
