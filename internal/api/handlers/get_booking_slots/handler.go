package get_booking_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getBookingSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_booking_slots"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetBookingSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq := &getBookingSlots.Request{}

	// Дата опциональна: без нее возвращаются слоты без признака рабочего дня
	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /booking-slots - Invalid date: %q", rawDate)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		useCaseReq.Date = &date
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /booking-slots - Failed to get slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
