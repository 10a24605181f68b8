package get_analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/analytics"
	"github.com/m04kA/SMC-AppointmentService/internal/service/analytics/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err    error
	gotReq *models.ReportRequest
}

func (f *fakeService) GetReport(_ context.Context, req *models.ReportRequest) (*models.Report, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	days := 30
	if req.Days != nil {
		days = *req.Days
	}
	return &models.Report{Days: days, TotalRevenue: decimal.Zero, BookingsByStatus: map[string]int{}}, nil
}

func call(svc *fakeService, query string, withUser bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics"+query, nil)
	if withUser {
		req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_Handle_DefaultPeriod(t *testing.T) {
	svc := &fakeService{}

	rec := call(svc, "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.gotReq.Days)
	assert.Contains(t, rec.Body.String(), `"days":30`)
}

func TestHandler_Handle_CustomPeriod(t *testing.T) {
	svc := &fakeService{}

	rec := call(svc, "?days=7", true)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq.Days)
	assert.Equal(t, 7, *svc.gotReq.Days)
}

func TestHandler_Handle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, call(&fakeService{}, "", false).Code)
	assert.Equal(t, http.StatusBadRequest, call(&fakeService{}, "?days=week", true).Code)
	assert.Equal(t, http.StatusBadRequest, call(&fakeService{err: analytics.ErrInvalidInput}, "?days=400", true).Code)
	assert.Equal(t, http.StatusForbidden, call(&fakeService{err: analytics.ErrAccessDenied}, "", true).Code)
	assert.Equal(t, http.StatusInternalServerError, call(&fakeService{err: analytics.ErrInternal}, "", true).Code)
}
