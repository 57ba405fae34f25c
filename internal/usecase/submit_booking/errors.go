package submit_booking

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек
	ErrDraftNotFound = errors.New("draft not found")

	// ErrDraftIncomplete возвращается при отправке черновика без обязательных полей
	ErrDraftIncomplete = errors.New("draft is incomplete")

	// ErrClosedOnDay возвращается, когда салон закрыт в выбранный день
	ErrClosedOnDay = errors.New("salon is closed on this day")

	// ErrClosedAtTime возвращается, когда выбранное время вне часов работы
	ErrClosedAtTime = errors.New("salon is closed at this time")

	// ErrSubmissionFailed возвращается при отказе AppointmentService;
	// черновик при этом сохраняется для повторной попытки
	ErrSubmissionFailed = errors.New("appointment submission failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
