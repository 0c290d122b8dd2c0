package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/barbershop-booking/internal/domain"
	catalogRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/catalog"
	"github.com/m04kA/barbershop-booking/pkg/txmanager"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo  AppointmentRepository
	serviceRepo      ServiceRepository
	loader           DayDataLoader
	txManager        TransactionManager
	metrics          MetricsRecorder
	timeProvider     TimeProvider
	minNoticeMinutes int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	loader DayDataLoader,
	txManager TransactionManager,
	metrics MetricsRecorder,
	minNoticeMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		loader:           loader,
		txManager:        txManager,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		minNoticeMinutes: minNoticeMinutes,
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Проверка слота и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%d, date=%s, time=%s", req.ServiceID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	input, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату и время относительно текущего момента
	now := uc.timeProvider.Now()
	if err := validateBookingTime(input.date, input.startTime, now, uc.minNoticeMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: booking time validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	var result *domain.Appointment

	// 4. Проверка слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Загружаем данные дня, записи дня блокируются (FOR UPDATE)
		data, err := uc.loader.LoadForUpdate(txCtx, input.date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load day data: %v", err)
			return fmt.Errorf("%w: failed to load day data: %w", ErrInternal, err)
		}

		// 4.2. Пересчитываем слоты и проверяем выбранный
		if err := checkSlot(input.date, input.startTime, service.DurationMinutes, data); err != nil {
			return err
		}

		// 4.3. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientName:  input.clientName,
			ClientPhone: input.clientPhone,
			ServiceID:   service.ID,
			Date:        input.date,
			StartTime:   input.startTime,
			Status:      domain.StatusPending,
			Notes:       input.notes,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, txmanager.ErrRetriesExhausted):
			// Конкурентные транзакции так и не дали зафиксировать запись: слот забрали
			uc.logger.Warn("CreateAppointment: serialization retries exhausted for %s %s", req.Date, input.startTime)
			uc.metrics.IncSlotConflict()
			return nil, ErrSlotNotAvailable
		case errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("CreateAppointment: slot %s %s is taken", req.Date, input.startTime)
			uc.metrics.IncSlotConflict()
			return nil, err
		case isBusinessError(err):
			uc.logger.Warn("CreateAppointment: %v", err)
			return nil, err
		case errors.Is(err, ErrInternal):
			return nil, err
		default:
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncAppointmentCreated()
	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		ServiceID:       result.ServiceID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Date:            result.Date,
		StartTime:       result.StartTime,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
