package get_booking_slots

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getBookingSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_booking_slots"
)

// SlotResponse временной слот: машинное значение и отображаемая метка
type SlotResponse struct {
	Value string `json:"value"` // "14:30"
	Label string `json:"label"` // "2:30 PM"
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date       *string        `json:"date,omitempty"`
	WorkingDay *bool          `json:"workingDay,omitempty"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Value: slot.Value.String(),
			Label: slot.Label,
		}
	}

	result := &SlotsResponse{
		WorkingDay: resp.WorkingDay,
		Slots:      slots,
	}

	if resp.Date != nil {
		formatted := resp.Date.Format(domain.DateFormat)
		result.Date = &formatted
	}

	return result
}
