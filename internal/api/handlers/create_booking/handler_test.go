package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/t1mga/FSP-BookingService/internal/usecase/create_booking"
	"github.com/t1mga/FSP-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return f.resp, f.err
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"clientId":        uuid.NewString(),
		"professionalId":  uuid.NewString(),
		"date":            "2026-09-21",
		"startTime":       "10:00",
		"endTime":         "11:30",
		"originAddress":   "Av. Paulista, 1000",
		"originLatitude":  -23.5505,
		"originLongitude": -46.6333,
	}
}

func doRequest(t *testing.T, useCase CreateBookingUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	NewHandler(useCase, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	startTime, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)
	endTime, err := types.NewTimeStringFromString("11:30")
	require.NoError(t, err)

	useCase := &fakeUseCase{resp: &createBooking.Response{
		ID:              uuid.New(),
		ClientID:        uuid.New(),
		ProfessionalID:  uuid.New(),
		Date:            time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC),
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: 90,
		Status:          "pending",
		OriginAddress:   "Av. Paulista, 1000",
		CreatedAt:       time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, useCase, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-09-21", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "not an object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{name: "bad client id", mutate: func(b map[string]interface{}) { b["clientId"] = "not-a-uuid" }},
		{name: "bad date", mutate: func(b map[string]interface{}) { b["date"] = "21/09/2026" }},
		{name: "bad start time", mutate: func(b map[string]interface{}) { b["startTime"] = "10am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validBody()
			tt.mutate(body)
			rec := doRequest(t, &fakeUseCase{}, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{name: "client not found", useCaseErr: createBooking.ErrClientNotFound, wantStatus: http.StatusNotFound},
		{name: "professional not found", useCaseErr: createBooking.ErrProfessionalNotFound, wantStatus: http.StatusNotFound},
		{name: "professional inactive", useCaseErr: createBooking.ErrProfessionalInactive, wantStatus: http.StatusUnprocessableEntity},
		{name: "too late", useCaseErr: createBooking.ErrTooLateToBook, wantStatus: http.StatusUnprocessableEntity},
		{name: "not available", useCaseErr: createBooking.ErrNotAvailable, wantStatus: http.StatusUnprocessableEntity},
		{name: "time conflict", useCaseErr: createBooking.ErrTimeConflict, wantStatus: http.StatusConflict},
		{name: "invalid input", useCaseErr: fmt.Errorf("%w: details", createBooking.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "internal", useCaseErr: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.useCaseErr}, validBody())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
