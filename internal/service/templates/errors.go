package templates

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон не найден или принадлежит другому специалисту
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда начало окна не раньше его конца
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrUnsupportedDuration возвращается, когда длительность слота не входит в allow-list
	ErrUnsupportedDuration = errors.New("unsupported slot duration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("templates service: internal error")
)
