package list_appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/service/appointments"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type stubService struct {
	got *models.ListAppointmentsRequest
	err error
}

func (s *stubService) List(_ context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(url.Values{
		"period":           {"week"},
		"status":           {"confirmed"},
		"includeCancelled": {"true"},
	})
	require.NoError(t, err)
	require.NotNil(t, req.Period)
	assert.Equal(t, "week", *req.Period)
	assert.Equal(t, "confirmed", *req.Status)
	assert.Nil(t, req.Date)
	assert.True(t, req.IncludeCancelled)

	_, err = ToServiceRequest(url.Values{"includeCancelled": {"maybe"}})
	assert.Error(t, err)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{name: "ok", query: "?date=2025-10-13", status: http.StatusOK},
		{name: "bad flag", query: "?includeCancelled=x", status: http.StatusBadRequest},
		{name: "invalid range", query: "?from=2025-10-13&to=2025-10-01", err: appointments.ErrInvalidTimeRange, status: http.StatusBadRequest},
		{name: "invalid input", query: "?period=year", err: appointments.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments"+tt.query, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
