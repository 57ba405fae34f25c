package get_booking_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса на получение слотов времени
type Request struct {
	Date *time.Time // Опциональная дата: при ее наличии в ответе есть признак рабочего дня
}

// Response модель ответа со списком слотов для выбора времени
type Response struct {
	Date       *time.Time    // Дата из запроса (если была)
	WorkingDay *bool         // Рабочий ли это день салона; nil, если дата не передана
	Slots      []domain.Slot // Упорядоченный список слотов
}
