package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp   *getAvailableSlots.Response
	err    error
	gotReq *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func TestHandler_Handle(t *testing.T) {
	serviceID := uuid.New()
	start := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		ServiceID: serviceID,
		Slots:     []domain.Slot{{StartTime: start, EndTime: start.Add(time.Hour)}},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?serviceId="+serviceID.String()+"&date=2024-01-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, serviceID, uc.gotReq.ServiceID)
	assert.Equal(t, "2024-01-15", uc.gotReq.Date.Format(domain.DateFormat))

	var body []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "2024-01-15T09:00:00Z", body[0]["startTime"])
	assert.Equal(t, "2024-01-15T10:00:00Z", body[0]["endTime"])
}

func TestHandler_Handle_EmptyListIsArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{Slots: []domain.Slot{}}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/?serviceId="+uuid.NewString()+"&date=2024-01-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		ucErr      error
		wantStatus int
	}{
		{name: "missing service", query: "?date=2024-01-15", wantStatus: http.StatusBadRequest},
		{name: "bad service id", query: "?serviceId=abc&date=2024-01-15", wantStatus: http.StatusBadRequest},
		{name: "missing date", query: "?serviceId=" + uuid.NewString(), wantStatus: http.StatusBadRequest},
		{name: "bad date", query: "?serviceId=" + uuid.NewString() + "&date=15.01.2024", wantStatus: http.StatusBadRequest},
		{name: "not found", query: "?serviceId=" + uuid.NewString() + "&date=2024-01-15", ucErr: getAvailableSlots.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", query: "?serviceId=" + uuid.NewString() + "&date=2024-01-15", ucErr: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
