package submit_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	submitBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
)

const (
	msgUnauthorized     = "не удалось определить пользователя"
	msgDraftNotFound    = "черновик не найден или истек"
	msgDraftIncomplete  = "черновик заполнен не полностью"
	msgClosedOnDay      = "салон закрыт в выбранный день"
	msgClosedAtTime     = "салон закрыт в выбранное время"
	msgSubmissionFailed = "не удалось создать запись, попробуйте еще раз"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	draftID := mux.Vars(r)["draftId"]

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{
		UserID:  userID,
		DraftID: draftID,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{draftId}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, submitBooking.ErrDraftIncomplete):
			h.logger.Warn("POST /drafts/{draftId}/submit - Draft incomplete: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDraftIncomplete)

		case errors.Is(err, submitBooking.ErrClosedOnDay):
			h.logger.Warn("POST /drafts/{draftId}/submit - Closed on day: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgClosedOnDay)

		case errors.Is(err, submitBooking.ErrClosedAtTime):
			h.logger.Warn("POST /drafts/{draftId}/submit - Closed at time: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgClosedAtTime)

		case errors.Is(err, submitBooking.ErrSubmissionFailed):
			h.logger.Error("POST /drafts/{draftId}/submit - Submission failed: draft_id=%s, error=%v", draftID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

		default:
			h.logger.Error("POST /drafts/{draftId}/submit - Failed to submit: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{draftId}/submit - Appointment created: draft_id=%s, appointment_id=%s, user_id=%d",
		draftID, result.AppointmentID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
