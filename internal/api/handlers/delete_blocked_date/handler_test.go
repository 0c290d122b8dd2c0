package delete_blocked_date

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/barbershop-booking/internal/service/schedule"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) RemoveBlockedDate(context.Context, int64) error {
	return s.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{name: "ok", id: "2", status: http.StatusNoContent},
		{name: "bad id", id: "-", status: http.StatusBadRequest},
		{name: "not found", id: "2", err: schedule.ErrBlockedDateNotFound, status: http.StatusNotFound},
		{name: "internal", id: "2", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, logger.NewNop())

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/blocked-dates/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"blockedDateId": tt.id})
			rec := httptest.NewRecorder()
			h.Handle(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
