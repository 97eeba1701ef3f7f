package request_free_time

import "errors"

var (
	// ErrScheduleEnforced возвращается, когда специалист принимает бронирования
	// только по слотам расписания
	ErrScheduleEnforced = errors.New("request_free_time: specialist accepts slot bookings only")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("request_free_time: invalid time range")

	// ErrStartInPast возвращается, когда запрошенное время начала уже прошло
	ErrStartInPast = errors.New("request_free_time: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_free_time: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_free_time: internal error")
)
