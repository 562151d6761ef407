package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june2024 = domain.Month{Year: 2024, Month: time.June}

func testHTTPSource(url string) *HTTPSource {
	return NewHTTPSource(HTTPConfig{BaseURL: url, Timeout: 2 * time.Second, MaxRetries: 1})
}

func TestHTTPSource_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/calendar-feeds", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("start"))
		assert.Equal(t, "2024-06-30", r.URL.Query().Get("end"))
		assert.Equal(t, "t1", r.URL.Query().Get("teacher"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Envelope{Success: true, Data: *validPayload()})
	}))
	defer srv.Close()

	src := testHTTPSource(srv.URL + "/v1/")
	f, err := src.FetchCalendarFeeds(context.Background(), QueryForMonth("t1", june2024, testLoc))

	require.NoError(t, err)
	assert.Len(t, f.SlotAssignments, 2)
	assert.Len(t, f.UnitLogs, 2)
	assert.Equal(t, testLoc, f.SlotAssignments[0].Date.Location())
}

func TestHTTPSource_SuccessFalse(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(Envelope{Success: false, Message: "teacher not found"})
	}))
	defer srv.Close()

	_, err := testHTTPSource(srv.URL).FetchCalendarFeeds(context.Background(), QueryForMonth("", june2024, testLoc))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeedUnavailable)
	assert.Contains(t, err.Error(), "teacher not found")
	assert.Equal(t, int32(1), calls.Load(), "rejections are not retried")
}

func TestHTTPSource_ServerErrorRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(Envelope{Success: true, Data: Payload{}})
	}))
	defer srv.Close()

	f, err := testHTTPSource(srv.URL).FetchCalendarFeeds(context.Background(), QueryForMonth("", june2024, testLoc))

	require.NoError(t, err)
	assert.Empty(t, f.SlotAssignments)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPSource_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := testHTTPSource(srv.URL).FetchCalendarFeeds(context.Background(), QueryForMonth("", june2024, testLoc))

	assert.ErrorIs(t, err, ErrFeedUnavailable)
	var unavailableErr *UnavailableError
	require.True(t, errors.As(err, &unavailableErr))
	assert.Equal(t, "http", unavailableErr.Source)
}

func TestHTTPSource_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	src := NewHTTPSource(HTTPConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := src.FetchCalendarFeeds(context.Background(), QueryForMonth("", june2024, testLoc))

	assert.ErrorIs(t, err, ErrFeedUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := testHTTPSource(url).FetchCalendarFeeds(context.Background(), QueryForMonth("", june2024, testLoc))
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}

func TestHTTPSource_MissingURL(t *testing.T) {
	_, err := testHTTPSource("").FetchCalendarFeeds(context.Background(), QueryForMonth("", june2024, testLoc))
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}
