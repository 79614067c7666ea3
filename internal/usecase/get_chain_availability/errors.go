package get_chain_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (пустая цепочка, нулевые ID)
	ErrInvalidInput = errors.New("get_chain_availability: invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("get_chain_availability: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("get_chain_availability: date is too far in the future")

	// ErrServiceNotFound возвращается, когда услуга цепочки не найдена, неактивна или без длительности
	ErrServiceNotFound = errors.New("get_chain_availability: service not found")

	// ErrInternal возвращается при ошибках внешних зависимостей
	ErrInternal = errors.New("get_chain_availability: internal error")
)
