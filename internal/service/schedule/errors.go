package schedule

import "errors"

var (
	// ErrAccessDenied возвращается, когда флаг пытается менять не его владелец
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
