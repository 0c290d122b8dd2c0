package get_available_slots

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Request модель запроса на получение слотов
// Указывается либо ServiceID, либо DurationMinutes
type Request struct {
	Date            string // Дата в формате YYYY-MM-DD
	ServiceID       int64  // ID услуги (длительность берется из каталога)
	DurationMinutes int    // Длительность в минутах, если услуга не указана
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time     // Дата, на которую запрашивались слоты
	ServiceID       int64         // ID услуги (0, если запрос был по длительности)
	DurationMinutes int           // Длительность, для которой считались слоты
	Slots           []domain.Slot // Слоты по возрастанию времени, включая занятые
}
