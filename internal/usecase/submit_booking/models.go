package submit_booking

// Request модель запроса на отправку черновика записи
type Request struct {
	UserID  int64  // ID пользователя (для логирования)
	DraftID string // ID сессии черновика
}

// Response модель ответа с подтверждением записи
type Response struct {
	AppointmentID   string // ID созданной записи
	CustomerID      string
	StaffID         string
	AppointmentDate string // "YYYY-MM-DD"
	AppointmentTime string // 24-часовой "HH:MM"
	Services        []string
	ComboOffers     []string
	Status          string
}
