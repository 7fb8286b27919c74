package notifications

import (
	"context"
	"healthlink-service/internal/pkg/dto/requests"
)

type NotificationService interface {
	PublishBookingEvent(ctx context.Context, event *requests.BookingEvent) error
}
