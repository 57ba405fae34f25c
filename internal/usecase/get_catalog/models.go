package get_catalog

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса каталога.
// Без даты комбо не определены - возвращаются только услуги.
type Request struct {
	Date *time.Time
}

// Response модель ответа с объединенным каталогом
type Response struct {
	Date  *time.Time
	Items []domain.BookableItem
}
