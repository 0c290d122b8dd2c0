package delete_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/barbershop-booking/internal/service/appointments"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type stubService struct {
	deleted int64
	err     error
}

func (s *stubService) Delete(_ context.Context, id int64) error {
	s.deleted = id
	return s.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{name: "ok", id: "9", status: http.StatusNoContent},
		{name: "bad id", id: "nine", status: http.StatusBadRequest},
		{name: "not found", id: "9", err: appointments.ErrAppointmentNotFound, status: http.StatusNotFound},
		{name: "internal", id: "9", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			h := NewHandler(svc, logger.NewNop())

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/appointments/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"appointmentId": tt.id})
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusNoContent {
				assert.Equal(t, int64(9), svc.deleted)
			}
		})
	}
}
