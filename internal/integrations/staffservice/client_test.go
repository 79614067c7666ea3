package staffservice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var scheduleDate = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, time.Second, nopLogger{})
}

func TestClient_GetStaffSchedule(t *testing.T) {
	t.Run("working day", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/internal/locations/10/staff/7/schedule", r.URL.Path)
			assert.Equal(t, "2026-10-16", r.URL.Query().Get("date"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"staff_id":7,"location_id":10,"date":"2026-10-16","is_working":true,
				"start_time":"09:00","end_time":"18:00","breaks":[{"start_time":"13:00","end_time":"14:00"}]}`))
		})

		schedule, err := client.GetStaffSchedule(context.Background(), 7, 10, scheduleDate)
		require.NoError(t, err)
		assert.True(t, schedule.IsWorking)
		assert.Equal(t, "09:00", schedule.StartTime.String())
		assert.Equal(t, "18:00", schedule.EndTime.String())
		require.Len(t, schedule.Breaks, 1)
		assert.Equal(t, "13:00", schedule.Breaks[0].StartTime.String())
	})

	t.Run("day off", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"staff_id":7,"location_id":10,"date":"2026-10-16","is_working":false}`))
		})

		schedule, err := client.GetStaffSchedule(context.Background(), 7, 10, scheduleDate)
		require.NoError(t, err)
		assert.False(t, schedule.IsWorking)
	})

	t.Run("working day until midnight", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"staff_id":7,"location_id":10,"date":"2026-10-16","is_working":true,
				"start_time":"16:00","end_time":"24:00"}`))
		})

		schedule, err := client.GetStaffSchedule(context.Background(), 7, 10, scheduleDate)
		require.NoError(t, err)
		assert.Equal(t, "24:00", schedule.EndTime.String())
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetStaffSchedule(context.Background(), 7, 10, scheduleDate)
		assert.True(t, errors.Is(err, ErrStaffNotFound))
	})

	t.Run("unexpected status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		})

		_, err := client.GetStaffSchedule(context.Background(), 7, 10, scheduleDate)
		assert.ErrorIs(t, err, ErrInvalidResponse)
		assert.Contains(t, err.Error(), "upstream down")
	})

	t.Run("broken body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"is_working":`))
		})

		_, err := client.GetStaffSchedule(context.Background(), 7, 10, scheduleDate)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("inverted working hours", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"is_working":true,"start_time":"18:00","end_time":"09:00"}`))
		})

		_, err := client.GetStaffSchedule(context.Background(), 7, 10, scheduleDate)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("transport failure", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, nopLogger{})

		_, err := client.GetStaffSchedule(context.Background(), 7, 10, scheduleDate)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
