package client

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrDuplicateEmail возвращается при попытке создать клиента с занятым email
	ErrDuplicateEmail = errors.New("client.repository: email already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
