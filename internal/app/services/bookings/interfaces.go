package bookings

import (
	"context"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/dto/requests"
	"healthlink-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, session *models.Session, request *requests.CreateBooking) (*responses.Booking, error)
	CancelBooking(ctx context.Context, session *models.Session, token string) error
	RescheduleBooking(ctx context.Context, session *models.Session, token string) (*responses.Booking, error)
	GetBookings(ctx context.Context, session *models.Session) ([]responses.Booking, error)
}

// BookingRepository keeps each user's queue tickets in a Redis list. The
// list is a working mirror, not an authoritative store; entries expire.
type BookingRepository interface {
	ListBookings(ctx context.Context, email string) ([]models.Booking, error)
	AppendBooking(ctx context.Context, email string, booking *models.Booking) error
	SaveBookings(ctx context.Context, email string, bookings []models.Booking) error
}

// TokenAuditRepository records every issued token durably in Mongo.
type TokenAuditRepository interface {
	RecordToken(ctx context.Context, record *models.TokenRecord) error
}
