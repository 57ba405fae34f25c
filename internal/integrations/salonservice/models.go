package salonservice

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Schedule операционное расписание салона из профильного сервиса.
// Любое поле может отсутствовать - движок бронирования обязан это переживать.
type Schedule struct {
	WorkingDays []int  `json:"workingDays"` // индексы дней недели, 0=воскресенье .. 6=суббота
	OpeningTime string `json:"openingTime"` // "HH:MM", может быть пустым
	ClosingTime string `json:"closingTime"` // "HH:MM", может быть пустым
}

// Service услуга салона
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// Combo комбо-предложение (скидочный набор услуг), действующее на конкретную дату
type Combo struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DiscountPercent float64 `json:"discountPercent"`
}

// Staff мастер салона
type Staff struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Customer клиент салона
type Customer struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`

	// PreferredStaff в источнике данных бывает либо строкой-идентификатором,
	// либо вложенным объектом мастера. Нормализуется к каноничному id один раз
	// здесь, на границе маппинга - дальше по коду ветвлений по форме нет.
	PreferredStaff *StaffRef `json:"preferredStaff,omitempty"`
}

// PreferredStaffID возвращает каноничный id предпочитаемого мастера или nil
func (c *Customer) PreferredStaffID() *string {
	if c.PreferredStaff == nil || c.PreferredStaff.ID == "" {
		return nil
	}
	id := c.PreferredStaff.ID
	return &id
}

// StaffRef ссылка на мастера, принимающая обе формы представления
type StaffRef struct {
	ID string
}

// UnmarshalJSON принимает либо строку-идентификатор ("S1"),
// либо объект с полем "_id" или "id"
func (r *StaffRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return fmt.Errorf("staff ref: %w", err)
		}
		r.ID = id
		return nil
	}

	var embedded struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(trimmed, &embedded); err != nil {
		return fmt.Errorf("staff ref: %w", err)
	}

	if embedded.MongoID != "" {
		r.ID = embedded.MongoID
	} else {
		r.ID = embedded.ID
	}
	return nil
}

// MarshalJSON сериализует ссылку обратно в каноничную строковую форму
func (r StaffRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// ErrorResponse модель ошибки от SalonService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
