package blocked_periods

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/schedule"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/schedule/models"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListBlockedPeriods(ctx context.Context, req *models.ListBlockedPeriodsRequest) (*models.BlockedPeriodListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BlockedPeriodListResponse)
	return resp, args.Error(1)
}

func (m *mockService) CreateBlockedPeriod(ctx context.Context, req *models.CreateBlockedPeriodRequest) (*models.BlockedPeriodResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BlockedPeriodResponse)
	return resp, args.Error(1)
}

func (m *mockService) DeleteBlockedPeriod(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestHandler_List(t *testing.T) {
	professionalID := uuid.New()
	svc := &mockService{}
	svc.On("ListBlockedPeriods", mock.Anything, mock.MatchedBy(func(req *models.ListBlockedPeriodsRequest) bool {
		return req.StartDate != nil && req.EndDate == nil && *req.ProfessionalID == professionalID
	})).Return(&models.BlockedPeriodListResponse{BlockedPeriods: []models.BlockedPeriodResponse{}}, nil)
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blocked-periods?startDate=2026-10-01&professionalId="+professionalID.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"blockedPeriods":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blocked-periods?endDate=soon", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Create(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateBlockedPeriod", mock.Anything, mock.MatchedBy(func(req *models.CreateBlockedPeriodRequest) bool {
		return req.AllDay
	})).Return(&models.BlockedPeriodResponse{ID: uuid.New(), Date: "2026-12-25", AllDay: true}, nil)
	svc.On("CreateBlockedPeriod", mock.Anything, mock.MatchedBy(func(req *models.CreateBlockedPeriodRequest) bool {
		return !req.AllDay
	})).Return(nil, fmt.Errorf("%w: %v", schedule.ErrInvalidInput, "startTime must be before endTime"))
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blocked-periods", strings.NewReader(`{"date":"2026-12-25","allDay":true}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blocked-periods",
		strings.NewReader(`{"date":"2026-12-24","allDay":false,"startTime":"15:00","endTime":"12:00"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "startTime must be before endTime")
}

func TestHandler_Delete(t *testing.T) {
	existing, missing := uuid.New(), uuid.New()
	svc := &mockService{}
	svc.On("DeleteBlockedPeriod", mock.Anything, existing).Return(nil)
	svc.On("DeleteBlockedPeriod", mock.Anything, missing).Return(schedule.ErrBlockedPeriodNotFound)
	h := NewHandler(svc, logger.Nop())

	for id, status := range map[string]int{
		existing.String(): http.StatusNoContent,
		missing.String():  http.StatusNotFound,
		"x":               http.StatusBadRequest,
	} {
		r := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/blocked-periods/"+id, nil), map[string]string{"blockedPeriodId": id})
		rec := httptest.NewRecorder()
		h.Delete(rec, r)
		assert.Equal(t, status, rec.Code, id)
	}
}
