package booking

import "errors"

var (
	// ErrInvalidWindow возвращается, когда окно выборки пустое или перевёрнуто
	ErrInvalidWindow = errors.New("booking.repository: invalid time window")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
