package models

import (
	"errors"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidPeriod возвращается при неизвестном пресете периода
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Пресеты периода для админской выборки
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// periodDays сколько дней, начиная с сегодняшнего, охватывает пресет
var periodDays = map[string]int{
	PeriodToday: 1,
	PeriodWeek:  7,
	"7d":        7,
	PeriodMonth: 30,
	"30d":       30,
}

// Request модели

// ListAppointmentsRequest запрос админской выборки записей
// Приоритет: Date > From/To > Period
type ListAppointmentsRequest struct {
	Date             *string `json:"date,omitempty"`   // Одна дата YYYY-MM-DD
	From             *string `json:"from,omitempty"`   // Начало периода
	To               *string `json:"to,omitempty"`     // Конец периода
	Period           *string `json:"period,omitempty"` // today | week | month | all
	Status           *string `json:"status,omitempty"` // Фильтр по статусу
	IncludeCancelled bool    `json:"includeCancelled,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToDomainFilter конвертирует request в domain фильтр относительно текущего момента now
func (r *ListAppointmentsRequest) ToDomainFilter(now time.Time) (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{IncludeCancelled: r.IncludeCancelled}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	switch {
	case r.Date != nil:
		date, err := domain.ParseDate(*r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = &date
		filter.EndDate = &date

	case r.From != nil || r.To != nil:
		if r.From != nil {
			from, err := domain.ParseDate(*r.From)
			if err != nil {
				return filter, ErrInvalidDate
			}
			filter.StartDate = &from
		}
		if r.To != nil {
			to, err := domain.ParseDate(*r.To)
			if err != nil {
				return filter, ErrInvalidDate
			}
			filter.EndDate = &to
		}

	case r.Period != nil && *r.Period != PeriodAll:
		days, ok := periodDays[*r.Period]
		if !ok {
			return filter, ErrInvalidPeriod
		}
		start := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
		end := start.AddDate(0, 0, days-1)
		filter.StartDate = &start
		filter.EndDate = &end
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Date        string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
// serviceNames - названия услуг по ID; для удаленной услуги подставляется domain.DeletedServiceName
func FromDomainAppointment(a *domain.Appointment, serviceNames map[int64]string) *AppointmentResponse {
	if a == nil {
		return nil
	}

	name, ok := serviceNames[a.ServiceID]
	if !ok {
		name = domain.DeletedServiceName
	}

	return &AppointmentResponse{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		ServiceID:   a.ServiceID,
		ServiceName: name,
		Date:        domain.FormatDate(a.Date),
		StartTime:   a.StartTime.String(),
		Status:      string(a.Status),
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, serviceNames map[int64]string) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, apt := range appointments {
		if aptResp := FromDomainAppointment(apt, serviceNames); aptResp != nil {
			resp.Appointments = append(resp.Appointments, *aptResp)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
