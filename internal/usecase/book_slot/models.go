package book_slot

import "time"

// Request модель запроса на бронирование слота
type Request struct {
	SlotID   int64 // ID слота доступности
	ClientID int64 // ID клиента (из контекста аутентификации)
}

// Response модель ответа с созданной сессией
type Response struct {
	SessionID    int64     // ID созданной сессии
	SpecialistID int64     // ID специалиста
	ClientID     int64     // ID клиента
	SlotID       int64     // ID исходного слота
	StartTime    time.Time // Начало сессии (совпадает со слотом)
	EndTime      time.Time // Конец сессии (совпадает со слотом)
	Status       string    // Статус сессии (confirmed)
	CreatedAt    time.Time // Время создания
}
