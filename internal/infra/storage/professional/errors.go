package professional

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional.repository: professional not found")

	// ErrWindowNotFound возвращается, когда окно доступности на день недели не найдено
	ErrWindowNotFound = errors.New("professional.repository: availability window not found")

	// ErrDuplicateEmail возвращается при попытке создать профессионала с занятым email
	ErrDuplicateEmail = errors.New("professional.repository: email already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("professional.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("professional.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("professional.repository: failed to scan row")
)
