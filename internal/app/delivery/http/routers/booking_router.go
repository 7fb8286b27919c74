package routers

import (
	"healthlink-service/internal/app/delivery/http/middlewares"
	"healthlink-service/internal/app/services/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(middlewares.Authenticate).Post("/", bookingController.CreateBooking)
	router.With(middlewares.Authenticate).Get("/", bookingController.GetBookings)
	router.With(middlewares.Authenticate).Delete("/{token}", bookingController.CancelBooking)
	router.With(middlewares.Authenticate).Post("/{token}/reschedule", bookingController.RescheduleBooking)
}
