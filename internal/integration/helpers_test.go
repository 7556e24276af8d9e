package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// request ids and timestamps differ on every run
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func flushReservations(t testing.TB, app *TestApp) {
	t.Helper()

	require.NoError(t, app.Redis.FlushDB(context.Background()).Err())
}

func assertReservedSeats(t testing.TB, app *TestApp, accountID int64, want int) {
	t.Helper()

	seats, err := app.Reservations.ReservedSeats(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, want, seats)
}

func assertTotalReservedSeats(t testing.TB, app *TestApp, want int) {
	t.Helper()

	total, err := app.Redis.Get(context.Background(), "seat_reservations:total").Int()
	if want == 0 {
		assert.Error(t, err)
		return
	}

	require.NoError(t, err)
	assert.Equal(t, want, total)
}
