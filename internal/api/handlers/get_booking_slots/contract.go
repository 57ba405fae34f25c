package get_booking_slots

import (
	"context"

	getBookingSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_booking_slots"
)

type GetBookingSlotsUseCase interface {
	Execute(ctx context.Context, req *getBookingSlots.Request) (*getBookingSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
