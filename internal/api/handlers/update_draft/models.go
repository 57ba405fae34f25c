package update_draft

import (
	"github.com/m04kA/SMC-SalonBooking/internal/service/drafts/models"
)

// UpdateDraftRequest HTTP request model.
// Отсутствующее поле означает "не менять".
type UpdateDraftRequest struct {
	CustomerID  *string  `json:"customerId,omitempty"`
	StaffID     *string  `json:"staffId,omitempty"`
	Date        *string  `json:"date,omitempty"` // "YYYY-MM-DD"
	Time        *string  `json:"time,omitempty"` // "HH:MM" или "HH:MM AM/PM"
	AddItems    []string `json:"addItems,omitempty"`
	RemoveItems []string `json:"removeItems,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateDraftRequest) ToServiceRequest() *models.UpdateDraftRequest {
	return &models.UpdateDraftRequest{
		CustomerID:  r.CustomerID,
		StaffID:     r.StaffID,
		Date:        r.Date,
		Time:        r.Time,
		AddItems:    r.AddItems,
		RemoveItems: r.RemoveItems,
	}
}
