package find_professionals

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (координаты вне диапазонов, длительность вне [30, 720] минут)
	ErrInvalidInput = errors.New("find_professionals: invalid input data")

	// ErrTooSoon возвращается, когда запрошенное время начала
	// меньше чем через 30 минут от текущего момента
	ErrTooSoon = errors.New("find_professionals: requested start must be at least 30 minutes in the future")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_professionals: internal error")
)
