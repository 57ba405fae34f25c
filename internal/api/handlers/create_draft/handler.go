package create_draft

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	draftsService "github.com/m04kA/SMC-SalonBooking/internal/service/drafts"
	"github.com/m04kA/SMC-SalonBooking/internal/service/drafts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "не удалось определить пользователя"
	msgCustomerNotFound   = "клиент не найден"
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

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Тело опционально: пустой POST создает пустой черновик
	var req CreateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /drafts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateDraftRequest{
		UserID:     userID,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, draftsService.ErrCustomerNotFound):
			h.logger.Warn("POST /drafts - Customer not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("POST /drafts - Failed to create draft: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
