package create_appointment

import (
	"time"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента в любом формате
	ServiceID   int64            // ID услуги
	Date        string           // Дата в формате YYYY-MM-DD
	StartTime   types.TimeString // Время начала слота (например, "10:00")
	Notes       *string          // Комментарий клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ClientName      string           // Имя клиента
	ClientPhone     string           // Нормализованный телефон
	ServiceID       int64            // ID услуги
	ServiceName     string           // Название услуги
	DurationMinutes int              // Длительность услуги
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	Status          string           // Статус записи
	Notes           *string          // Комментарий

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
