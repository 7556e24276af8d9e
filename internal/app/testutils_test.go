package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/mocks"
	"github.com/metinatakli/cinema-tickets/internal/ticketing"
	"github.com/metinatakli/cinema-tickets/internal/validator"
)

func newTestApplication(t *testing.T, opts ...func(*Application)) *Application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tickets, err := ticketing.NewTicketService(logger, &mocks.MockPaymentService{}, &mocks.MockSeatReservationService{})
	if err != nil {
		t.Fatal(err)
	}

	app := &Application{
		config: Config{
			Env:    "test",
			Stripe: StripeConfig{Currency: "gbp"},
		},
		validator: validator.NewValidator(),
		logger:    logger,
		tickets:   tickets,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
		reader = http.NoBody
	case string:
		reader = bytes.NewBufferString(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	var errorResp struct {
		Message          string                `json:"message"`
		ValidationErrors []api.ValidationError `json:"validationErrors"`
	}
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if len(errorResp.ValidationErrors) > 0 {
		issues := make(map[string]bool)
		for _, vErr := range errorResp.ValidationErrors {
			issues[vErr.Issue] = true
		}

		if !issues[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}
		return
	}

	if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
	}
}
