package create_service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/barbershop-booking/internal/service/catalog"
	"github.com/m04kA/barbershop-booking/internal/service/catalog/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) Create(_ context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ServiceResponse{ID: 1, Name: req.Name, DurationMinutes: req.DurationMinutes, Price: req.Price, Active: true}, nil
}

func TestHandle(t *testing.T) {
	const body = `{"name":"Barba","durationMinutes":30,"price":35}`

	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "created", body: body, status: http.StatusCreated},
		{name: "bad json", body: `{"name":`, status: http.StatusBadRequest},
		{name: "invalid", body: `{"name":"","durationMinutes":30,"price":35}`, err: catalog.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", body: body, err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&stubService{err: tt.err}, logger.NewNop()).
				Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/services", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
