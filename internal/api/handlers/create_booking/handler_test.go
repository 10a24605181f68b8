package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	err    error
	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	start := req.StartTime.On(req.Date)
	return &createBooking.Response{
		ID:         uuid.New(),
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     "pending",
	}, nil
}

func serve(t *testing.T, uc *fakeUseCase, userID *uuid.UUID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), *userID))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_Handle_Created(t *testing.T) {
	userID, serviceID := uuid.New(), uuid.New()
	uc := &fakeUseCase{}

	rec := serve(t, uc, &userID, `{"serviceId":"`+serviceID.String()+`","date":"2024-01-15","time":"10:00","notes":"hi"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, userID, uc.gotReq.CustomerID)
	assert.Equal(t, serviceID, uc.gotReq.ServiceID)
	assert.Nil(t, uc.gotReq.ProviderID)
	assert.Equal(t, "10:00", uc.gotReq.StartTime.String())
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestHandler_Handle_Errors(t *testing.T) {
	userID := uuid.New()
	valid := `{"serviceId":"` + uuid.NewString() + `","date":"2024-01-15","time":"10:00"}`

	tests := []struct {
		name       string
		userID     *uuid.UUID
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "no identity", body: valid, wantStatus: http.StatusUnauthorized},
		{name: "malformed json", userID: &userID, body: `{`, wantStatus: http.StatusBadRequest},
		{name: "missing service", userID: &userID, body: `{"date":"2024-01-15","time":"10:00"}`, wantStatus: http.StatusBadRequest},
		{name: "bad date", userID: &userID, body: `{"serviceId":"` + uuid.NewString() + `","date":"15/01/2024","time":"10:00"}`, wantStatus: http.StatusBadRequest},
		{name: "bad time", userID: &userID, body: `{"serviceId":"` + uuid.NewString() + `","date":"2024-01-15","time":"25:00"}`, wantStatus: http.StatusBadRequest},
		{name: "slot taken", userID: &userID, body: valid, ucErr: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "slot locked", userID: &userID, body: valid, ucErr: createBooking.ErrSlotLocked, wantStatus: http.StatusLocked},
		{name: "service not found", userID: &userID, body: valid, ucErr: createBooking.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "provider mismatch", userID: &userID, body: valid, ucErr: createBooking.ErrProviderMismatch, wantStatus: http.StatusBadRequest},
		{name: "in the past", userID: &userID, body: valid, ucErr: createBooking.ErrStartInPast, wantStatus: http.StatusBadRequest},
		{name: "internal", userID: &userID, body: valid, ucErr: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.ucErr}, tt.userID, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
