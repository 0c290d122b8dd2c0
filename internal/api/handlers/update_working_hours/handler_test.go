package update_working_hours

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/service/schedule"
	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type stubService struct {
	got *models.UpdateWorkingHoursRequest
	err error
}

func (s *stubService) UpdateWorkingHours(_ context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.WorkingHoursResponse{WorkingHours: req.WorkingHours}, nil
}

const body = `{"workingHours":[{"dayOfWeek":1,"isOpen":true,"openTime":"09:00","closeTime":"18:00"}]}`

func TestHandle_Success(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/working-hours", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.got.WorkingHours, 1)
	assert.Equal(t, 1, svc.got.WorkingHours[0].DayOfWeek)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "bad json", body: `[`, status: http.StatusBadRequest},
		{name: "invalid input", body: body, err: schedule.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", body: body, err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/working-hours", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
