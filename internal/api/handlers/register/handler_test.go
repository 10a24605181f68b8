package register

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/internal/service/users"
	"github.com/m04kA/SMC-AppointmentService/internal/service/users/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{ err error }

func (f *fakeService) Register(_ context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserResponse{ID: uuid.New(), Name: req.Name, Email: req.Email, Role: "customer"}, nil
}

func TestHandler_Handle(t *testing.T) {
	valid := `{"name":"Ann","email":"ann@example.com","password":"secret123"}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "created", body: valid, wantStatus: http.StatusCreated},
		{name: "missing password", body: `{"name":"Ann","email":"ann@example.com"}`, wantStatus: http.StatusBadRequest},
		{name: "email taken", body: valid, err: users.ErrEmailTaken, wantStatus: http.StatusConflict},
		{name: "invalid data", body: valid, err: users.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", body: valid, err: users.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "password")
		})
	}
}
