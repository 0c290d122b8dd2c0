package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/barbershop-booking/internal/domain"
	blockedDateRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/blockeddate"
	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
)

// Service сервис для управления расписанием и заблокированными датами
type Service struct {
	workingHoursRepo WorkingHoursRepository
	blockedDateRepo  BlockedDateRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	workingHoursRepo WorkingHoursRepository,
	blockedDateRepo BlockedDateRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		workingHoursRepo: workingHoursRepo,
		blockedDateRepo:  blockedDateRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetWorkingHours возвращает расписание на все 7 дней недели
// Дни без сохраненного расписания возвращаются закрытыми
func (s *Service) GetWorkingHours(ctx context.Context) (*models.WorkingHoursResponse, error) {
	s.logger.Info("GetWorkingHours: fetching working hours")

	hours, err := s.workingHoursRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	byDay := make(map[int]domain.WorkingHours, len(hours))
	for _, wh := range hours {
		byDay[wh.DayOfWeek] = wh
	}

	resp := &models.WorkingHoursResponse{
		WorkingHours: make([]models.WorkingHoursEntry, 0, domain.MaxDayOfWeek+1),
	}
	for day := domain.MinDayOfWeek; day <= domain.MaxDayOfWeek; day++ {
		wh, ok := byDay[day]
		if !ok {
			wh = domain.ClosedDay(day)
		}
		resp.WorkingHours = append(resp.WorkingHours, models.FromDomainWorkingHours(wh))
	}

	return resp, nil
}

// UpdateWorkingHours заменяет расписание целиком
func (s *Service) UpdateWorkingHours(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpdateWorkingHours: replacing working hours, %d days", len(req.WorkingHours))

	// 1. Валидируем входные данные
	hours, err := validateWorkingHours(req.WorkingHours)
	if err != nil {
		s.logger.Warn("UpdateWorkingHours: validation failed: %v", err)
		return nil, err
	}

	// 2. Заменяем расписание в транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.workingHoursRepo.ReplaceAll(txCtx, hours)
	})
	if err != nil {
		s.logger.Error("UpdateWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHours: successfully replaced working hours")
	return s.GetWorkingHours(ctx)
}

// ListBlockedDates возвращает все заблокированные даты
func (s *Service) ListBlockedDates(ctx context.Context) (*models.BlockedDateListResponse, error) {
	s.logger.Info("ListBlockedDates: fetching blocked dates")

	blocked, err := s.blockedDateRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListBlockedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedDates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlockedDates: successfully fetched %d blocked dates", len(blocked))
	return models.FromDomainBlockedDateList(blocked), nil
}

// AddBlockedDate блокирует дату для записи
// Существующие записи на эту дату не отменяются
func (s *Service) AddBlockedDate(ctx context.Context, req *models.CreateBlockedDateRequest) (*models.BlockedDateResponse, error) {
	s.logger.Info("AddBlockedDate: blocking date=%s", req.Date)

	// 1. Валидируем входные данные
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		s.logger.Warn("AddBlockedDate: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	var reason *string
	if req.Reason != nil {
		trimmed := strings.TrimSpace(*req.Reason)
		if utf8.RuneCountInString(trimmed) > domain.MaxBlockReasonLength {
			s.logger.Warn("AddBlockedDate: reason too long")
			return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
		}
		if trimmed != "" {
			reason = &trimmed
		}
	}

	// 2. Создаем блокировку
	created, err := s.blockedDateRepo.Create(ctx, &domain.BlockedDate{Date: date, Reason: reason})
	if err != nil {
		if errors.Is(err, blockedDateRepo.ErrBlockedDateExists) {
			s.logger.Warn("AddBlockedDate: date=%s is already blocked", req.Date)
			return nil, ErrBlockedDateExists
		}
		s.logger.Error("AddBlockedDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddBlockedDate: successfully blocked date=%s, id=%d", req.Date, created.ID)
	return models.FromDomainBlockedDate(created), nil
}

// RemoveBlockedDate снимает блокировку даты
func (s *Service) RemoveBlockedDate(ctx context.Context, id int64) error {
	s.logger.Info("RemoveBlockedDate: removing blocked date id=%d", id)

	if err := s.blockedDateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedDateRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("RemoveBlockedDate: blocked date id=%d not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("RemoveBlockedDate: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: RemoveBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveBlockedDate: successfully removed blocked date id=%d", id)
	return nil
}

// validateWorkingHours проверяет расписание: дни недели уникальны, время в формате HH:MM,
// у рабочего дня открытие раньше закрытия
func validateWorkingHours(entries []models.WorkingHoursEntry) ([]domain.WorkingHours, error) {
	if len(entries) > domain.MaxDayOfWeek+1 {
		return nil, fmt.Errorf("%w: at most %d days expected", ErrInvalidInput, domain.MaxDayOfWeek+1)
	}

	seen := make(map[int]bool, len(entries))
	hours := make([]domain.WorkingHours, 0, len(entries))

	for _, entry := range entries {
		if seen[entry.DayOfWeek] {
			return nil, fmt.Errorf("%w: duplicate dayOfWeek %d", ErrInvalidInput, entry.DayOfWeek)
		}
		seen[entry.DayOfWeek] = true

		wh, err := entry.ToDomainWorkingHours()
		if err != nil {
			return nil, fmt.Errorf("%w: dayOfWeek %d: %v", ErrInvalidInput, entry.DayOfWeek, err)
		}
		if err := wh.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		hours = append(hours, wh)
	}

	return hours, nil
}
