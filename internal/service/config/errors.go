package config

import "errors"

var (
	// ErrInvalidConfig возвращается, когда сохранённая конфигурация не проходит проверку
	ErrInvalidConfig = errors.New("config.service: invalid scheduling config")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("config.service: internal error")
)
