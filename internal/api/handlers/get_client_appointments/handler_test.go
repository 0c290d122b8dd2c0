package get_client_appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/service/appointments"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type stubService struct {
	phone string
	err   error
}

func (s *stubService) ListByPhone(_ context.Context, phone string) (*models.AppointmentListResponse, error) {
	s.phone = phone
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{
		{ID: 1, ClientPhone: "11987654321", Status: "cancelled"},
	}}, nil
}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?phone=%2811%29+98765-4321", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "(11) 98765-4321", svc.phone)

	var body models.AppointmentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Appointments, 1)
	assert.Equal(t, "cancelled", body.Appointments[0].Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{name: "missing phone", query: "", status: http.StatusBadRequest},
		{name: "invalid phone", query: "?phone=123", err: appointments.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", query: "?phone=11987654321", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments"+tt.query, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
