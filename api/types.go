// Package api holds the JSON request and response bodies of the HTTP API.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketRequest struct {
	Type  string `json:"type" validate:"required,ticket_type"`
	Count int    `json:"count"`
}

type PurchaseTicketsRequest struct {
	AccountId int64           `json:"accountId"`
	Tickets   []TicketRequest `json:"tickets" validate:"required,max=100,dive"`
}

type PurchaseResponse struct {
	AccountId     int64           `json:"accountId"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Currency      string          `json:"currency"`
	SeatsReserved int             `json:"seatsReserved"`
	TicketCount   int             `json:"ticketCount"`
}

type QuoteResponse struct {
	AccountId      int64           `json:"accountId"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Currency       string          `json:"currency"`
	SeatsToReserve int             `json:"seatsToReserve"`
	TicketCount    int             `json:"ticketCount"`
}

type TicketPrice struct {
	Type      string          `json:"type"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Seats     int             `json:"seats"`
}

type TicketPricesResponse struct {
	Currency           string        `json:"currency"`
	MaxTicketsPerOrder int           `json:"maxTicketsPerOrder"`
	Prices             []TicketPrice `json:"prices"`
}

type ReservedSeatsResponse struct {
	AccountId     int64 `json:"accountId"`
	SeatsReserved int   `json:"seatsReserved"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	Reason    string    `json:"reason,omitempty"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}
