package models

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модели

// WorkingHoursEntry расписание одного дня недели (0 = воскресенье)
type WorkingHoursEntry struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`  // "09:00"
	CloseTime string `json:"closeTime"` // "18:00"
}

// UpdateWorkingHoursRequest запрос на замену расписания
// Дни, не попавшие в запрос, считаются закрытыми
type UpdateWorkingHoursRequest struct {
	WorkingHours []WorkingHoursEntry `json:"workingHours"`
}

// CreateBlockedDateRequest запрос на блокировку даты
type CreateBlockedDateRequest struct {
	Date   string  `json:"date"` // "2025-12-25"
	Reason *string `json:"reason,omitempty"`
}

// ToDomainWorkingHours конвертирует запись запроса в domain модель
// Для закрытого дня пустое время заменяется значением по умолчанию
func (e WorkingHoursEntry) ToDomainWorkingHours() (domain.WorkingHours, error) {
	wh := domain.WorkingHours{
		DayOfWeek: e.DayOfWeek,
		IsOpen:    e.IsOpen,
		OpenTime:  domain.DefaultOpenTime,
		CloseTime: domain.DefaultCloseTime,
	}

	if e.OpenTime != "" || e.IsOpen {
		openTime, err := types.NewTimeStringFromString(e.OpenTime)
		if err != nil {
			return wh, err
		}
		wh.OpenTime = openTime
	}
	if e.CloseTime != "" || e.IsOpen {
		closeTime, err := types.NewTimeStringFromString(e.CloseTime)
		if err != nil {
			return wh, err
		}
		wh.CloseTime = closeTime
	}

	return wh, nil
}

// Response модели

// WorkingHoursResponse расписание на все 7 дней недели
type WorkingHoursResponse struct {
	WorkingHours []WorkingHoursEntry `json:"workingHours"`
}

// BlockedDateResponse ответ с данными заблокированной даты
type BlockedDateResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedDateListResponse ответ со списком заблокированных дат
type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// FromDomainWorkingHours конвертирует domain модель в DTO
func FromDomainWorkingHours(wh domain.WorkingHours) WorkingHoursEntry {
	return WorkingHoursEntry{
		DayOfWeek: wh.DayOfWeek,
		IsOpen:    wh.IsOpen,
		OpenTime:  wh.OpenTime.String(),
		CloseTime: wh.CloseTime.String(),
	}
}

// FromDomainBlockedDate конвертирует domain модель в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	if b == nil {
		return nil
	}
	return &BlockedDateResponse{
		ID:        b.ID,
		Date:      domain.FormatDate(b.Date),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedDateList конвертирует список domain моделей в DTO
func FromDomainBlockedDateList(blocked []domain.BlockedDate) *BlockedDateListResponse {
	resp := &BlockedDateListResponse{
		BlockedDates: make([]BlockedDateResponse, 0, len(blocked)),
	}
	for i := range blocked {
		resp.BlockedDates = append(resp.BlockedDates, *FromDomainBlockedDate(&blocked[i]))
	}
	return resp
}
