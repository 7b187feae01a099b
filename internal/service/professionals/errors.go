package professionals

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrWindowNotFound возвращается, когда окно доступности на день недели не найдено
	ErrWindowNotFound = errors.New("availability window not found")

	// ErrDuplicateEmail возвращается при попытке использовать занятый email
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
