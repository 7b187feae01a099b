package create_booking

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("create_booking: professional not found")

	// ErrProfessionalInactive возвращается, когда профессионал деактивирован
	ErrProfessionalInactive = errors.New("create_booking: professional is not active")

	// ErrTooLateToBook возвращается при нарушении правила заблаговременности (30 минут)
	ErrTooLateToBook = errors.New("create_booking: booking must start at least 30 minutes from now")

	// ErrNotAvailable возвращается, когда запрошенный слот вне доступности профессионала
	ErrNotAvailable = errors.New("create_booking: professional is not available at requested time")

	// ErrTimeConflict возвращается, когда слот пересекается с существующим бронированием
	ErrTimeConflict = errors.New("create_booking: requested time conflicts with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (в том числе нарушениях инвариантов сущности бронирования)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
