package update_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	draftsService "github.com/m04kA/SMC-SalonBooking/internal/service/drafts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDraftNotFound      = "черновик не найден или истек"
	msgCustomerNotFound   = "клиент не найден"
	msgItemNotInCatalog   = "позиция отсутствует в каталоге на выбранную дату"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM или HH:MM AM/PM"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{draftId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), draftID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, draftsService.ErrDraftNotFound):
			h.logger.Warn("PATCH /drafts/{draftId} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, draftsService.ErrCustomerNotFound):
			h.logger.Warn("PATCH /drafts/{draftId} - Customer not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, draftsService.ErrItemNotInCatalog):
			h.logger.Warn("PATCH /drafts/{draftId} - Item not in catalog: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgItemNotInCatalog)

		case errors.Is(err, draftsService.ErrInvalidDate):
			h.logger.Warn("PATCH /drafts/{draftId} - Invalid date: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, draftsService.ErrInvalidTime):
			h.logger.Warn("PATCH /drafts/{draftId} - Invalid time: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("PATCH /drafts/{draftId} - Failed to update draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
