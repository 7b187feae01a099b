package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrDuplicateEmail возвращается при попытке использовать занятый email
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
