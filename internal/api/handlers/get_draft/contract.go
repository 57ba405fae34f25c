package get_draft

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/drafts/models"
)

type DraftService interface {
	Get(ctx context.Context, draftID string) (*models.DraftState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
