package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/barbershop-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
	"github.com/m04kA/barbershop-booking/pkg/ptr"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	names, err := s.serviceNames(ctx)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(apt, names), nil
}

// List получает записи для админской агенды
//
// Примеры использования:
// - Агенда на день: Date = "2025-10-15"
// - Записи за период: From и To
// - Ближайшая неделя: Period = "week"
// - Только ожидающие подтверждения: Status = "pending"
// - Включая отмененные: IncludeCancelled = true
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, date=%v, from=%v, to=%v, period=%v, status=%v, includeCancelled=%v",
		ptr.Deref(req.Date, ""), ptr.Deref(req.From, ""), ptr.Deref(req.To, ""),
		ptr.Deref(req.Period, ""), ptr.Deref(req.Status, ""), req.IncludeCancelled)

	filter, err := req.ToDomainFilter(s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		s.logger.Warn("List: end date %s is before start date %s",
			domain.FormatDate(*filter.EndDate), domain.FormatDate(*filter.StartDate))
		return nil, ErrInvalidTimeRange
	}

	return s.list(ctx, "List", filter)
}

// ListByPhone получает все записи клиента по номеру телефона, включая отмененные
func (s *Service) ListByPhone(ctx context.Context, phone string) (*models.AppointmentListResponse, error) {
	normalized, err := domain.NormalizePhone(phone)
	if err != nil {
		s.logger.Warn("ListByPhone: invalid phone %q", phone)
		return nil, fmt.Errorf("%w: invalid phone", ErrInvalidInput)
	}

	s.logger.Info("ListByPhone: fetching appointments for phone=%s", normalized)

	return s.list(ctx, "ListByPhone", domain.AppointmentsFilter{
		ClientPhone:      &normalized,
		IncludeCancelled: true,
	})
}

// UpdateStatus меняет статус записи согласно таблице допустимых переходов
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	// 1. Валидируем статус
	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var updated *domain.Appointment

	// 2. Проверяем переход и обновляем в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		apt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if !apt.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d",
				apt.Status, newStatus, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, apt.Status, newStatus)
		}

		// Обновление условное: параллельная смена статуса даст ErrStatusChanged
		updated, err = s.appointmentRepo.UpdateStatus(txCtx, id, apt.Status, newStatus)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, ErrInvalidTransition):
			return nil, err
		case errors.Is(err, appointmentRepo.ErrStatusChanged):
			s.logger.Warn("UpdateStatus: appointment id=%d was changed concurrently", id)
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		default:
			s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.metrics.IncAppointmentStatus(string(newStatus))

	names, err := s.serviceNames(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return models.FromDomainAppointment(updated, names), nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) list(ctx context.Context, op string, filter domain.AppointmentsFilter) (*models.AppointmentListResponse, error) {
	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	names, err := s.serviceNames(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: successfully fetched %d appointments", op, len(appointments))
	return models.FromDomainAppointmentList(appointments, names), nil
}

// serviceNames возвращает названия всех услуг каталога, включая выключенные
func (s *Service) serviceNames(ctx context.Context) (map[int64]string, error) {
	services, err := s.serviceRepo.GetAll(ctx, false)
	if err != nil {
		s.logger.Error("serviceNames: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	names := make(map[int64]string, len(services))
	for _, svc := range services {
		names[svc.ID] = svc.Name
	}
	return names, nil
}
