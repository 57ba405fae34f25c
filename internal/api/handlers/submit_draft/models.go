package submit_draft

import (
	submitBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_booking"
)

// AppointmentResponse HTTP response model с подтверждением записи
type AppointmentResponse struct {
	AppointmentID   string   `json:"appointmentId"`
	CustomerID      string   `json:"customerId"`
	StaffID         string   `json:"staffId"`
	AppointmentDate string   `json:"appointmentDate"`
	AppointmentTime string   `json:"appointmentTime"`
	Services        []string `json:"services"`
	ComboOffers     []string `json:"comboOffers"`
	Status          string   `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentID:   resp.AppointmentID,
		CustomerID:      resp.CustomerID,
		StaffID:         resp.StaffID,
		AppointmentDate: resp.AppointmentDate,
		AppointmentTime: resp.AppointmentTime,
		Services:        resp.Services,
		ComboOffers:     resp.ComboOffers,
		Status:          resp.Status,
	}
}
