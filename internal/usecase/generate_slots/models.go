package generate_slots

import "time"

// Request модель запроса на генерацию слотов
type Request struct {
	SpecialistID int64     // ID специалиста
	FromDate     time.Time // Начало диапазона (включительно, только дата)
	ToDate       time.Time // Конец диапазона (исключительно, только дата)
}

// Response модель ответа с результатом генерации
type Response struct {
	GeneratedCount int // Количество реально вставленных слотов
}
