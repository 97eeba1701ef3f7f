package request_free_time

import "time"

// Request модель запроса свободного времени
type Request struct {
	SpecialistID int64     // ID специалиста
	ClientID     int64     // ID клиента (из контекста аутентификации)
	Start        time.Time // Предложенное начало
	End          time.Time // Предложенный конец
	Notes        *string   // Заметки клиента (опционально)
}

// Response модель ответа с созданной сессией
type Response struct {
	SessionID    int64     // ID созданной сессии
	SpecialistID int64     // ID специалиста
	ClientID     int64     // ID клиента
	Start        time.Time // Начало сессии
	End          time.Time // Конец сессии
	Status       string    // Статус сессии (pending)
	Notes        *string   // Заметки клиента
	CreatedAt    time.Time // Время создания
}
