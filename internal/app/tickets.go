package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) PurchaseTicketsHandler(w http.ResponseWriter, r *http.Request) {
	accountID, requests, ok := app.readPurchaseRequest(w, r)
	if !ok {
		return
	}

	summary, err := app.tickets.PurchaseTickets(r.Context(), accountID, requests...)
	if err != nil {
		app.purchaseErrorResponse(w, r, err)
		return
	}

	resp := api.PurchaseResponse{
		AccountId:     summary.AccountID,
		TotalAmount:   decimal.NewFromInt(int64(summary.TotalAmount)),
		Currency:      app.currency(),
		SeatsReserved: summary.SeatsToReserve,
		TicketCount:   summary.TicketCount,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) QuoteTicketsHandler(w http.ResponseWriter, r *http.Request) {
	accountID, requests, ok := app.readPurchaseRequest(w, r)
	if !ok {
		return
	}

	summary, err := app.tickets.Quote(accountID, requests...)
	if err != nil {
		app.purchaseErrorResponse(w, r, err)
		return
	}

	resp := api.QuoteResponse{
		AccountId:      summary.AccountID,
		TotalAmount:    decimal.NewFromInt(int64(summary.TotalAmount)),
		Currency:       app.currency(),
		SeatsToReserve: summary.SeatsToReserve,
		TicketCount:    summary.TicketCount,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTicketPricesHandler(w http.ResponseWriter, r *http.Request) {
	prices := domain.TicketPrices()

	resp := api.TicketPricesResponse{
		Currency:           app.currency(),
		MaxTicketsPerOrder: domain.MaxTicketsPerPurchase,
		Prices:             make([]api.TicketPrice, len(prices)),
	}

	for i, p := range prices {
		resp.Prices[i] = api.TicketPrice{
			Type:      p.Type.String(),
			UnitPrice: decimal.NewFromInt(int64(p.UnitPrice)),
			Seats:     p.Seats,
		}
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetReservedSeatsHandler answers 404 when seat reservations are only logged
// and no running count exists.
func (app *Application) GetReservedSeatsHandler(w http.ResponseWriter, r *http.Request, accountID int64) {
	if app.reservedSeats == nil {
		app.notFoundResponse(w, r)
		return
	}

	seats, err := app.reservedSeats.ReservedSeats(r.Context(), accountID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ReservedSeatsResponse{
		AccountId:     accountID,
		SeatsReserved: seats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readPurchaseRequest decodes and validates the body shared by the quote and
// purchase endpoints. It writes the error response itself and reports false
// when the request cannot go any further.
func (app *Application) readPurchaseRequest(w http.ResponseWriter, r *http.Request) (int64, []domain.TicketTypeRequest, bool) {
	var input api.PurchaseTicketsRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return 0, nil, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return 0, nil, false
	}

	requests, err := toTicketTypeRequests(input.Tickets)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return 0, nil, false
	}

	return input.AccountId, requests, true
}

func (app *Application) purchaseErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var purchaseErr *domain.InvalidPurchaseError

	switch {
	case errors.As(err, &purchaseErr):
		app.invalidPurchaseResponse(w, r, purchaseErr)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) currency() string {
	return strings.ToUpper(app.config.Stripe.Currency)
}

func toTicketTypeRequests(tickets []api.TicketRequest) ([]domain.TicketTypeRequest, error) {
	requests := make([]domain.TicketTypeRequest, len(tickets))

	for i, t := range tickets {
		ticketType, err := domain.ParseTicketType(t.Type)
		if err != nil {
			return nil, err
		}

		requests[i] = domain.NewTicketTypeRequest(ticketType, t.Count)
	}

	return requests, nil
}
