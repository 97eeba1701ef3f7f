package set_template_active

import "context"

type TemplateService interface {
	SetActive(ctx context.Context, id, specialistID int64, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
