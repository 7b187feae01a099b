package domain

import "errors"

var (
	// ErrInvalidCoordinates возвращается при координатах вне допустимых диапазонов
	ErrInvalidCoordinates = errors.New("domain: latitude must be in [-90, 90] and longitude in [-180, 180]")

	// ErrInvalidTimeRange возвращается, когда время начала не раньше времени конца
	ErrInvalidTimeRange = errors.New("domain: start time must be before end time")

	// ErrDurationOutOfRange возвращается при длительности вне диапазона [30 мин, 12 ч]
	ErrDurationOutOfRange = errors.New("domain: booking duration must be between 30 minutes and 12 hours")

	// ErrDateNotInFuture возвращается, когда дата бронирования не в будущем
	ErrDateNotInFuture = errors.New("domain: booking date must be in the future")

	// ErrInvalidOriginAddress возвращается при пустом или слишком длинном адресе
	ErrInvalidOriginAddress = errors.New("domain: origin address must be non-blank and at most 200 characters")

	// ErrInvalidName возвращается при пустом или слишком длинном имени
	ErrInvalidName = errors.New("domain: name must be non-blank and at most 100 characters")

	// ErrInvalidEmail возвращается при синтаксически некорректном email
	ErrInvalidEmail = errors.New("domain: invalid email address")

	// ErrInvalidPhone возвращается, когда телефон содержит не 10-11 цифр
	ErrInvalidPhone = errors.New("domain: phone must contain 10 to 11 digits")

	// ErrInvalidServiceRadius возвращается при радиусе обслуживания вне диапазона (0, 500]
	ErrInvalidServiceRadius = errors.New("domain: service radius must be greater than 0 and at most 500 km")

	// ErrInvalidStateTransition возвращается при недопустимом переходе статуса бронирования
	ErrInvalidStateTransition = errors.New("domain: invalid booking status transition")
)
