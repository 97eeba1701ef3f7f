package delete_template

import "context"

type TemplateService interface {
	Delete(ctx context.Context, id, specialistID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
