package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или не активна в локации
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrInvalidDuration возвращается, когда у услуги не задана положительная длительность
	ErrInvalidDuration = errors.New("catalog.repository: invalid service duration")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
