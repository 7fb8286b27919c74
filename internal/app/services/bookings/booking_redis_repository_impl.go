package bookings

import (
	"context"
	"fmt"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/app/services/shared/redis"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type BookingRedisRepository struct {
	RedisRepository redis.RedisRepository
	ListExpiry      time.Duration
}

func NewBookingRedisRepository(redisRepository redis.RedisRepository, cfg *config.InternalConfig) BookingRepository {
	return &BookingRedisRepository{
		RedisRepository: redisRepository,
		ListExpiry:      time.Duration(cfg.Booking.ListExpiryInHours) * time.Hour,
	}
}

func (repo *BookingRedisRepository) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	members, err := repo.RedisRepository.GetListMembers(ctx, bookingKey(email))
	if err != nil {
		return nil, err
	}

	bookings := make([]models.Booking, 0, len(members))
	for _, member := range members {
		var booking models.Booking
		if err := json.Unmarshal([]byte(member), &booking); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (repo *BookingRedisRepository) AppendBooking(ctx context.Context, email string, booking *models.Booking) error {
	value, err := json.Marshal(booking)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return repo.RedisRepository.PushToList(ctx, bookingKey(email), repo.ListExpiry, value)
}

func (repo *BookingRedisRepository) SaveBookings(ctx context.Context, email string, bookings []models.Booking) error {
	values := make([]interface{}, 0, len(bookings))
	for _, booking := range bookings {
		value, err := json.Marshal(booking)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		values = append(values, value)
	}
	return repo.RedisRepository.ReplaceList(ctx, bookingKey(email), repo.ListExpiry, values...)
}

func bookingKey(email string) string {
	return fmt.Sprintf(constvars.BookingRedisKeyFormat, email)
}
