package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек
	ErrDraftNotFound = errors.New("drafts: draft not found")

	// ErrCustomerNotFound возвращается, когда выбранный клиент не найден
	ErrCustomerNotFound = errors.New("drafts: customer not found")

	// ErrItemNotInCatalog возвращается при попытке добавить позицию,
	// отсутствующую в каталоге на выбранную дату
	ErrItemNotInCatalog = errors.New("drafts: item not found in catalog")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("drafts: invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("drafts: invalid time format, expected HH:MM or HH:MM AM/PM")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts: internal error")
)
