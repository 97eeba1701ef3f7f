package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не существует
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже забронирован
	// (проигранная гонка бронирования)
	ErrSlotNotAvailable = errors.New("book_slot: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
