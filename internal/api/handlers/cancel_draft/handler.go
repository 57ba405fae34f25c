package cancel_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	draftsService "github.com/m04kA/SMC-SalonBooking/internal/service/drafts"
)

const (
	msgDraftNotFound = "черновик не найден или истек"
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

// Handle DELETE /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	if err := h.service.Cancel(r.Context(), draftID); err != nil {
		switch {
		case errors.Is(err, draftsService.ErrDraftNotFound):
			h.logger.Warn("DELETE /drafts/{draftId} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		default:
			h.logger.Error("DELETE /drafts/{draftId} - Failed to cancel draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{draftId} - Draft cancelled: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
