package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, &noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	return rec
}

func validBody() string {
	return `{"eventSlug":"pilates-caracas","optionId":7,"date":"2026-09-07","startTime":"10:00"}`
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:        1,
			EventSlug: "pilates-caracas",
			OptionID:  7,
			Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00",
			EndTime:   "11:00",
			Status:    "pending",
			CreatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(t, uc, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "event not found", err: createBooking.ErrEventNotFound, wantStatus: http.StatusNotFound},
		{name: "option not found", err: createBooking.ErrOptionNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid slot", err: createBooking.ErrInvalidTimeSlot, wantStatus: http.StatusBadRequest},
		{name: "capacity exceeded", err: createBooking.ErrSlotCapacityExceeded, wantStatus: http.StatusConflict},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateFormat(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"eventSlug":"x","optionId":7,"date":"07.09.2026","startTime":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadTimeFormat(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"eventSlug":"x","optionId":7,"date":"2026-09-07","startTime":"10am"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
