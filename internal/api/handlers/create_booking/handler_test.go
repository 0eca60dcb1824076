package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/inovalogics-art/booking-service/internal/usecase/create_booking"
	"github.com/inovalogics-art/booking-service/pkg/types"
)

type fakeUseCase struct {
	err      error
	lastReq  *createBooking.Request
	response *createBooking.Response
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
	Timestamp string `json:"timestamp"`
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) (*httptest.ResponseRecorder, envelope) {
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

const validBody = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"date": "2026-01-20",
	"time": "10:00"
}`

func TestHandler_Handle(t *testing.T) {
	t.Run("Malformed JSON Returns 400", func(t *testing.T) {
		rec, env := doRequest(t, &fakeUseCase{}, "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "invalid request body", env.Error)
	})

	t.Run("Schema Violations Return 422 With Field List", func(t *testing.T) {
		rec, env := doRequest(t, &fakeUseCase{}, `{
			"name": "J",
			"email": "not-an-email",
			"date": "2026-01-20",
			"time": "10:00"
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.False(t, env.Success)

		fields := make([]string, len(env.Errors))
		for i, fe := range env.Errors {
			fields[i] = fe.Field
		}
		assert.ElementsMatch(t, []string{"name", "email"}, fields)
	})

	t.Run("Unknown Fields Tolerated", func(t *testing.T) {
		uc := &fakeUseCase{response: &createBooking.Response{ID: "b-1", Status: "pending"}}
		rec, env := doRequest(t, uc, `{
			"name": "Jane Doe",
			"email": "jane@example.com",
			"date": "2026-01-20",
			"time": "10:00",
			"newsletter_opt_in": true
		}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
	})

	t.Run("Bad Phone Returns 422", func(t *testing.T) {
		rec, env := doRequest(t, &fakeUseCase{}, `{
			"name": "Jane Doe",
			"email": "jane@example.com",
			"phone": "call me",
			"date": "2026-01-20",
			"time": "10:00"
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "phone", env.Errors[0].Field)
		assert.Equal(t, "must be a valid phone number", env.Errors[0].Message)
	})

	t.Run("Past Date Returns 400", func(t *testing.T) {
		rec, env := doRequest(t, &fakeUseCase{err: createBooking.ErrDateInPast}, validBody)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "booking date is in the past", env.Error)
	})

	t.Run("Blocked Date Returns 409", func(t *testing.T) {
		rec, env := doRequest(t, &fakeUseCase{err: createBooking.ErrDateBlocked}, validBody)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "this date is not available for booking", env.Error)
	})

	t.Run("Taken Slot Returns 409", func(t *testing.T) {
		rec, env := doRequest(t, &fakeUseCase{err: createBooking.ErrSlotNotAvailable}, validBody)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "this time slot is no longer available", env.Error)
	})

	t.Run("Internal Error Returns 500", func(t *testing.T) {
		rec, env := doRequest(t, &fakeUseCase{err: createBooking.ErrInternal}, validBody)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("Success Returns 201 With Booking", func(t *testing.T) {
		uc := &fakeUseCase{response: &createBooking.Response{
			ID:            "b-1",
			Name:          "Jane Doe",
			Email:         "jane@example.com",
			ScheduledTime: types.TimeString("10:00:00"),
			Timezone:      "America/New_York",
			MeetingType:   "video",
			Status:        "pending",
		}}

		rec, env := doRequest(t, uc, validBody)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
		assert.NotEmpty(t, env.Timestamp)

		var booking BookingResponse
		require.NoError(t, json.Unmarshal(env.Data, &booking))
		assert.Equal(t, "b-1", booking.ID)
		assert.Equal(t, "pending", booking.Status)
		assert.Equal(t, "10:00:00", booking.ScheduledTime)

		require.NotNil(t, uc.lastReq)
		assert.Equal(t, "2026-01-20", uc.lastReq.Date.Format("2006-01-02"))
	})
}
