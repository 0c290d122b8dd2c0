package delete_service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/barbershop-booking/internal/service/catalog"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) Delete(context.Context, int64) error {
	return s.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{name: "ok", id: "6", status: http.StatusNoContent},
		{name: "bad id", id: "6a", status: http.StatusBadRequest},
		{name: "not found", id: "6", err: catalog.ErrServiceNotFound, status: http.StatusNotFound},
		{name: "internal", id: "6", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/services/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"serviceId": tt.id})
			rec := httptest.NewRecorder()
			NewHandler(&stubService{err: tt.err}, logger.NewNop()).Handle(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
