package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/barbershop-booking/internal/availability"
	"github.com/m04kA/barbershop-booking/internal/domain"
	catalogRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/catalog"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	serviceRepo      ServiceRepository
	loader           DayDataLoader
	txManager        TransactionManager
	timeProvider     TimeProvider
	minNoticeMinutes int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	loader DayDataLoader,
	txManager TransactionManager,
	minNoticeMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		loader:           loader,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		minNoticeMinutes: minNoticeMinutes,
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service=%d, duration=%d", req.Date, req.ServiceID, req.DurationMinutes)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем длительность: из каталога или из запроса
	duration := req.DurationMinutes
	if req.ServiceID > 0 {
		service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.Active {
			uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		duration = service.DurationMinutes
	}

	response := &Response{
		Date:            date,
		ServiceID:       req.ServiceID,
		DurationMinutes: duration,
		Slots:           []domain.Slot{},
	}

	// 3. На прошедшие даты слотов нет
	now := uc.timeProvider.Now()
	if domain.IsDateInPast(date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date)
		return response, nil
	}

	// 4. Читаем расписание, блокировки и записи одним согласованным снимком
	var data availability.DayData
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		data, err = uc.loader.Load(txCtx, date)
		return err
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load day data for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load day data: %v", ErrInternal, err)
	}

	// 5. Вычисляем слоты
	slots, err := availability.ComputeSlots(req.Date, duration, data)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	// 6. Сегодняшние слоты, на которые уже поздно записываться, недоступны
	markElapsedSlots(slots, date, now, uc.minNoticeMinutes)

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, duration=%d", len(slots), req.Date, duration)

	response.Slots = slots
	return response, nil
}
