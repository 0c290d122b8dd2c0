package list_blocked_dates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/barbershop-booking/internal/service/schedule/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) ListBlockedDates(context.Context) (*models.BlockedDateListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BlockedDateListResponse{BlockedDates: []models.BlockedDateResponse{}}, nil
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/blocked-dates", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"blockedDates":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHandler(&stubService{err: errors.New("db down")}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/blocked-dates", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
