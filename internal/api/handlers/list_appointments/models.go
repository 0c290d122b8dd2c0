package list_appointments

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		IncludeCancelled: false, // По умолчанию без отмененных
	}

	req.Date = optional(query.Get("date"))
	req.From = optional(query.Get("from"))
	req.To = optional(query.Get("to"))
	req.Period = optional(query.Get("period"))
	req.Status = optional(query.Get("status"))

	if includeStr := query.Get("includeCancelled"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = include
	}

	return req, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
