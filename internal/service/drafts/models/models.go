package models

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модели

// CreateDraftRequest запрос на создание черновика записи
type CreateDraftRequest struct {
	UserID     int64
	CustomerID *string // опционально: сразу выбрать клиента
}

// UpdateDraftRequest пополевое редактирование черновика.
// nil-поле - "не менять". Все поля независимы и применяются в одном запросе.
type UpdateDraftRequest struct {
	CustomerID  *string  // выбрать клиента (подставит предпочитаемого мастера)
	StaffID     *string  // явно выбрать мастера
	Date        *string  // "YYYY-MM-DD"
	Time        *string  // "HH:MM" или "HH:MM AM/PM"
	AddItems    []string // id позиций каталога для добавления
	RemoveItems []string // id позиций для удаления
}

// Response модели

// Item позиция каталога в ответе
type Item struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind"`
	Label           string  `json:"label"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Price           float64 `json:"price,omitempty"`
	DiscountPercent float64 `json:"discountPercent,omitempty"`
}

// Validation независимые результаты проверки дня и времени.
// nil - проверка пройдена (или поле еще не заполнено).
type Validation struct {
	DayError  *string `json:"dayError,omitempty"`
	TimeError *string `json:"timeError,omitempty"`
}

// DraftState снимок черновика для UI
type DraftState struct {
	ID                  string     `json:"id"`
	CustomerID          string     `json:"customerId,omitempty"`
	StaffID             string     `json:"staffId,omitempty"`
	StaffChosenManually bool       `json:"staffChosenManually"`
	Date                string     `json:"date,omitempty"` // "YYYY-MM-DD"
	Time                string     `json:"time,omitempty"` // 24-часовой "HH:MM"
	Items               []Item     `json:"items"`
	Validation          Validation `json:"validation"`

	// CombosForDate свежий список комбо на выбранную дату;
	// заполняется, когда в этом же запросе менялась дата
	CombosForDate []Item `json:"combosForDate,omitempty"`

	// RemovedComboIDs комбо, убранные из выбора из-за смены даты
	RemovedComboIDs []string `json:"removedComboIds,omitempty"`
}

// FromDomainDraft конвертирует доменный черновик и результат проверки в снимок для UI
func FromDomainDraft(draft *domain.BookingDraft, availability domain.Availability) *DraftState {
	state := &DraftState{
		ID:                  draft.ID,
		CustomerID:          draft.CustomerID,
		StaffID:             draft.StaffID,
		StaffChosenManually: draft.StaffChosenManually,
		Time:                draft.Time.String(),
		Items:               FromDomainItems(draft.Items),
		Validation:          fromDomainAvailability(availability),
	}

	if !draft.Date.IsZero() {
		state.Date = draft.Date.Format(domain.DateFormat)
	}

	return state
}

// FromDomainItems конвертирует позиции каталога
func FromDomainItems(items []domain.BookableItem) []Item {
	result := make([]Item, len(items))
	for i, item := range items {
		result[i] = Item{
			ID:              item.ID,
			Kind:            string(item.Kind),
			Label:           item.Label,
			DurationMinutes: item.DurationMinutes,
			Price:           item.Price,
			DiscountPercent: item.DiscountPercent,
		}
	}
	return result
}

func fromDomainAvailability(availability domain.Availability) Validation {
	var v Validation
	if availability.DayError != nil {
		msg := "salon is closed on this day"
		v.DayError = &msg
	}
	if availability.TimeError != nil {
		msg := "salon is closed at this time"
		v.TimeError = &msg
	}
	return v
}
