package domain

import (
	"fmt"
	"strings"
)

type TicketType int

const (
	Adult TicketType = iota + 1
	Child
	Infant
)

// TicketTypes lists every ticket type in display order.
var TicketTypes = []TicketType{Adult, Child, Infant}

func (t TicketType) String() string {
	switch t {
	case Adult:
		return "ADULT"
	case Child:
		return "CHILD"
	case Infant:
		return "INFANT"
	default:
		return fmt.Sprintf("TicketType(%d)", int(t))
	}
}

func (t TicketType) Valid() bool {
	switch t {
	case Adult, Child, Infant:
		return true
	default:
		return false
	}
}

func ParseTicketType(s string) (TicketType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADULT":
		return Adult, nil
	case "CHILD":
		return Child, nil
	case "INFANT":
		return Infant, nil
	default:
		return 0, fmt.Errorf("unknown ticket type %q", s)
	}
}

func (t TicketType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", t)
	}

	return []byte(t.String()), nil
}

func (t *TicketType) UnmarshalText(text []byte) error {
	parsed, err := ParseTicketType(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// TicketTypeRequest is a single line item of a purchase. NoOfTickets is taken
// as sent by the caller and may be negative until validated.
type TicketTypeRequest struct {
	Type        TicketType
	NoOfTickets int
}

func NewTicketTypeRequest(ticketType TicketType, noOfTickets int) TicketTypeRequest {
	return TicketTypeRequest{
		Type:        ticketType,
		NoOfTickets: noOfTickets,
	}
}

type PurchaseSummary struct {
	AccountID      int64
	TotalAmount    int
	SeatsToReserve int
	TicketCount    int
}

func NewPurchaseSummary(accountID int64, requests ...TicketTypeRequest) *PurchaseSummary {
	return &PurchaseSummary{
		AccountID:      accountID,
		TotalAmount:    TotalAmount(requests...),
		SeatsToReserve: SeatsToReserve(requests...),
		TicketCount:    countTickets(requests).total,
	}
}
