package list_services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/barbershop-booking/internal/service/catalog/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type stubService struct {
	onlyActive *bool
	err        error
}

func (s *stubService) List(_ context.Context, onlyActive bool) (*models.ServiceListResponse, error) {
	s.onlyActive = &onlyActive
	if s.err != nil {
		return nil, s.err
	}
	return &models.ServiceListResponse{Services: []models.ServiceResponse{}}, nil
}

func TestHandle_PassesScope(t *testing.T) {
	for _, onlyActive := range []bool{true, false} {
		svc := &stubService{}
		rec := httptest.NewRecorder()
		NewHandler(svc, onlyActive, logger.NewNop()).
			Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"services":[]}`, rec.Body.String())
		if assert.NotNil(t, svc.onlyActive) {
			assert.Equal(t, onlyActive, *svc.onlyActive)
		}
	}
}

func TestHandle_InternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{err: errors.New("db down")}, true, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
