package appointmentservice

// CreateAppointmentRequest тело запроса на создание записи.
// Форма, имена полей и разбиение services/comboOffers - внешний контракт,
// менять нельзя.
type CreateAppointmentRequest struct {
	CustomerID      string   `json:"customerId"`
	Services        []string `json:"services"`    // только id услуг
	ComboOffers     []string `json:"comboOffers"` // только id комбо-предложений
	StaffID         string   `json:"staffId"`
	AppointmentDate string   `json:"appointmentDate"` // ISO дата, YYYY-MM-DD
	AppointmentTime string   `json:"appointmentTime"` // 24-часовой формат, HH:MM
}

// Appointment созданная запись из AppointmentService
type Appointment struct {
	ID              string   `json:"id"`
	CustomerID      string   `json:"customerId"`
	Services        []string `json:"services"`
	ComboOffers     []string `json:"comboOffers"`
	StaffID         string   `json:"staffId"`
	AppointmentDate string   `json:"appointmentDate"`
	AppointmentTime string   `json:"appointmentTime"`
	Status          string   `json:"status"`
}

// ErrorResponse модель ошибки от AppointmentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
