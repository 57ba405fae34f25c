package appointmentservice

import "errors"

var (
	// ErrRejected возвращается, когда бэкенд отклонил запись (конфликт, валидация на его стороне)
	ErrRejected = errors.New("appointmentservice client: appointment rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointmentservice client: invalid response")
)
