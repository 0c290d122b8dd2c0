package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/barbershop-booking/internal/domain"
	catalogRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/catalog"
	"github.com/m04kA/barbershop-booking/internal/service/catalog/models"
)

// Service сервис для управления каталогом услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает услуги каталога
// onlyActive = true для публичной витрины, false для админки
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services, onlyActive=%v", onlyActive)

	services, err := s.serviceRepo.GetAll(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d", id)

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}

	return models.FromDomainService(service), nil
}

// Create создает новую услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q, duration=%d, price=%.2f", req.Name, req.DurationMinutes, req.Price)

	// 1. Валидируем входные данные
	service := req.ToDomainService()
	service.Name = strings.TrimSpace(service.Name)
	if err := validateService(service); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаем услугу
	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Update обновляет услугу
// Изменение длительности влияет на расчет слотов для уже существующих записей
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	// 1. Получаем текущую услугу
	current, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	// 2. Применяем изменения и валидируем
	current.Name = strings.TrimSpace(req.Name)
	current.DurationMinutes = req.DurationMinutes
	current.Price = req.Price
	if req.Active != nil {
		current.Active = *req.Active
	}
	if err := validateService(current); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	// 3. Сохраняем
	updated, err := s.serviceRepo.Update(ctx, id, current)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// SetActive включает или выключает услугу
// Выключенная услуга скрыта из витрины и недоступна для новых записей
func (s *Service) SetActive(ctx context.Context, id int64, req *models.SetActiveRequest) (*models.ServiceResponse, error) {
	s.logger.Info("SetActive: setting service id=%d active=%v", id, req.Active)

	updated, err := s.serviceRepo.SetActive(ctx, id, req.Active)
	if err != nil {
		return nil, s.mapRepoError("SetActive", id, err)
	}

	s.logger.Info("SetActive: successfully set service id=%d active=%v", id, req.Active)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
// Существующие записи сохраняются и отображаются с пометкой об удаленной услуге
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%d", id)
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, catalogRepo.ErrServiceNotFound) {
		s.logger.Warn("%s: service id=%d not found", op, id)
		return ErrServiceNotFound
	}
	s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// validateService проверяет поля услуги
func validateService(service *domain.Service) error {
	nameLen := utf8.RuneCountInString(service.Name)
	if nameLen == 0 {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if nameLen > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}

	if service.DurationMinutes < domain.MinServiceDurationMinutes || service.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if service.Price < 0 || math.IsNaN(service.Price) || math.IsInf(service.Price, 0) {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}

	return nil
}
