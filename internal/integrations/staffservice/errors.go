package staffservice

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден в локации
	ErrStaffNotFound = errors.New("staffservice client: staff not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
