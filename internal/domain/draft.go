package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	// ErrDraftIncomplete возвращается при попытке отправить черновик без обязательных полей
	ErrDraftIncomplete = errors.New("domain: booking draft is incomplete")
)

// BookingDraft is the in-progress, unsaved appointment being assembled by the user.
// It is the only mutable state the engine owns: created fresh per booking session,
// edited field by field, discarded on submission or cancellation.
type BookingDraft struct {
	ID     string
	UserID int64

	CustomerID string
	StaffID    string
	// StaffChosenManually фиксирует явный выбор мастера пользователем.
	// Пока флаг не выставлен, выбор клиента подставляет его предпочитаемого
	// мастера; после - выбор клиента мастера не перетирает.
	StaffChosenManually bool

	Date time.Time        // нулевое значение - дата не выбрана
	Time types.TimeString // пустое значение - время не выбрано

	Items []BookableItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SelectCustomer выбирает клиента и подставляет его предпочитаемого мастера
// как значение по умолчанию. Ручной выбор мастера имеет приоритет и не
// перетирается ни повторным выбором того же клиента, ни выбором другого.
func (d *BookingDraft) SelectCustomer(customerID string, preferredStaffID *string) {
	d.CustomerID = customerID

	if preferredStaffID != nil && *preferredStaffID != "" && !d.StaffChosenManually {
		d.StaffID = *preferredStaffID
	}
}

// SelectStaff фиксирует явный выбор мастера пользователем
func (d *BookingDraft) SelectStaff(staffID string) {
	d.StaffID = staffID
	d.StaffChosenManually = staffID != ""
}

// SetDate устанавливает дату записи
func (d *BookingDraft) SetDate(date time.Time) {
	d.Date = date
}

// SetTime устанавливает время записи (уже нормализованное к 24-часовому формату)
func (d *BookingDraft) SetTime(t types.TimeString) {
	d.Time = t
}

// AddItem добавляет позицию в выбор. Повторное добавление той же позиции игнорируется.
func (d *BookingDraft) AddItem(item BookableItem) bool {
	if d.HasItem(item.ID) {
		return false
	}
	d.Items = append(d.Items, item)
	return true
}

// RemoveItem убирает позицию из выбора по id
func (d *BookingDraft) RemoveItem(itemID string) bool {
	for i, item := range d.Items {
		if item.ID == itemID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem возвращает true, если позиция уже выбрана
func (d *BookingDraft) HasItem(itemID string) bool {
	for _, item := range d.Items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// IsComplete возвращает true, когда заполнены все обязательные поля:
// клиент, мастер, дата, время и хотя бы одна позиция
func (d *BookingDraft) IsComplete() bool {
	return d.CustomerID != "" &&
		d.StaffID != "" &&
		!d.Date.IsZero() &&
		!d.Time.IsZero() &&
		len(d.Items) > 0
}
