package bookings

import (
	"context"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/app/services/shared/notifications"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/dto/requests"
	"healthlink-service/internal/pkg/dto/responses"
	"healthlink-service/internal/pkg/exceptions"
	"healthlink-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository    BookingRepository
	TokenAuditRepository TokenAuditRepository
	NotificationService  notifications.NotificationService
	InternalConfig       *config.InternalConfig
	Logger               *zap.Logger
}

func NewBookingUsecase(
	bookingRedisRepository BookingRepository,
	tokenMongoRepository TokenAuditRepository,
	notificationService notifications.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) BookingUsecase {
	return &bookingUsecase{
		BookingRepository:    bookingRedisRepository,
		TokenAuditRepository: tokenMongoRepository,
		NotificationService:  notificationService,
		InternalConfig:       internalConfig,
		Logger:               logger,
	}
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, session *models.Session, request *requests.CreateBooking) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("email", session.Email),
		zap.Bool("emergency", request.Emergency),
	)

	series := constvars.BookingSeriesRegular
	etaMinutes := utils.RandomIntInclusive(constvars.BookingEtaMinMinutes, constvars.BookingEtaMinMinutes+constvars.BookingEtaSpreadMinutes-1)
	queuePosition := utils.RandomIntInclusive(1, constvars.BookingQueuePositionMax)
	if request.Emergency {
		series = constvars.BookingSeriesEmergency
		etaMinutes = constvars.BookingEmergencyEtaMinutes
		queuePosition = 1
	}

	booking := &models.Booking{
		Token:         utils.GenerateBookingToken(series),
		ClinicName:    request.ClinicName,
		Symptoms:      request.Symptoms,
		EtaMinutes:    etaMinutes,
		QueuePosition: queuePosition,
		Emergency:     request.Emergency,
		Status:        models.BookingStatusActive,
		CreatedAt:     time.Now().UTC(),
	}

	if err := uc.BookingRepository.AppendBooking(ctx, session.Email, booking); err != nil {
		return nil, err
	}

	record := &models.TokenRecord{
		Email:      session.Email,
		Token:      booking.Token,
		ClinicName: booking.ClinicName,
		Emergency:  booking.Emergency,
		CreatedAt:  booking.CreatedAt,
	}
	if err := uc.TokenAuditRepository.RecordToken(ctx, record); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, requests.BookingEventBooked, session.Email, booking)

	return buildBookingResponse(booking), nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, session *models.Session, token string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("bookingUsecase.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("email", session.Email),
		zap.String("token", token),
	)

	bookings, err := uc.BookingRepository.ListBookings(ctx, session.Email)
	if err != nil {
		return err
	}

	// Cancelling is idempotent: an unknown or already cancelled token is
	// not an error.
	changed := false
	for i := range bookings {
		if bookings[i].Token == token && bookings[i].Status == models.BookingStatusActive {
			bookings[i].Status = models.BookingStatusCancelled
			changed = true
			uc.publishEvent(ctx, requests.BookingEventCancelled, session.Email, &bookings[i])
		}
	}
	if !changed {
		return nil
	}

	return uc.BookingRepository.SaveBookings(ctx, session.Email, bookings)
}

func (uc *bookingUsecase) RescheduleBooking(ctx context.Context, session *models.Session, token string) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("bookingUsecase.RescheduleBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("email", session.Email),
		zap.String("token", token),
	)

	bookings, err := uc.BookingRepository.ListBookings(ctx, session.Email)
	if err != nil {
		return nil, err
	}

	var rescheduled *models.Booking
	for i := range bookings {
		if bookings[i].Token == token && bookings[i].Status == models.BookingStatusActive {
			bookings[i].EtaMinutes += uc.InternalConfig.Booking.RescheduleShiftMin
			rescheduled = &bookings[i]
			break
		}
	}
	if rescheduled == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}

	if err := uc.BookingRepository.SaveBookings(ctx, session.Email, bookings); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, requests.BookingEventRescheduled, session.Email, rescheduled)

	return buildBookingResponse(rescheduled), nil
}

func (uc *bookingUsecase) GetBookings(ctx context.Context, session *models.Session) ([]responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("bookingUsecase.GetBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("email", session.Email),
	)

	bookings, err := uc.BookingRepository.ListBookings(ctx, session.Email)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Booking, 0, len(bookings))
	for i := range bookings {
		response = append(response, *buildBookingResponse(&bookings[i]))
	}
	return response, nil
}

// publishEvent is best effort; losing a notification never fails the booking.
func (uc *bookingUsecase) publishEvent(ctx context.Context, eventType, email string, booking *models.Booking) {
	event := &requests.BookingEvent{
		Type:       eventType,
		Token:      booking.Token,
		ClinicName: booking.ClinicName,
		Email:      email,
		EtaMinutes: booking.EtaMinutes,
	}
	if err := uc.NotificationService.PublishBookingEvent(ctx, event); err != nil {
		uc.Logger.Warn("bookingUsecase failed to publish booking event",
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}

func buildBookingResponse(booking *models.Booking) *responses.Booking {
	return &responses.Booking{
		Token:         booking.Token,
		ClinicName:    booking.ClinicName,
		EtaMinutes:    booking.EtaMinutes,
		QueuePosition: booking.QueuePosition,
		Emergency:     booking.Emergency,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt.Format(time.RFC3339),
	}
}
