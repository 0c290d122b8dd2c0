package schedule

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория расписания
type WorkingHoursRepository interface {
	GetAll(ctx context.Context) ([]domain.WorkingHours, error)
	ReplaceAll(ctx context.Context, hours []domain.WorkingHours) error
}

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	Create(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	GetAll(ctx context.Context) ([]domain.BlockedDate, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
