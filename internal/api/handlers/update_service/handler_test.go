package update_service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/barbershop-booking/internal/service/catalog"
	"github.com/m04kA/barbershop-booking/internal/service/catalog/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) Update(_ context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ServiceResponse{ID: id, Name: req.Name}, nil
}

func TestHandle(t *testing.T) {
	const body = `{"name":"Corte","durationMinutes":45,"price":50}`

	tests := []struct {
		name   string
		id     string
		body   string
		err    error
		status int
	}{
		{name: "ok", id: "1", body: body, status: http.StatusOK},
		{name: "bad id", id: "one", body: body, status: http.StatusBadRequest},
		{name: "bad json", id: "1", body: `{`, status: http.StatusBadRequest},
		{name: "not found", id: "1", body: body, err: catalog.ErrServiceNotFound, status: http.StatusNotFound},
		{name: "invalid", id: "1", body: body, err: catalog.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", id: "1", body: body, err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/services/"+tt.id, strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"serviceId": tt.id})
			rec := httptest.NewRecorder()
			NewHandler(&stubService{err: tt.err}, logger.NewNop()).Handle(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
