package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidPurchase = errors.New("invalid purchase")

type PurchaseRejection string

const (
	RejectInvalidAccount    PurchaseRejection = "invalid account"
	RejectNegativeCount     PurchaseRejection = "negative count"
	RejectUnknownTicketType PurchaseRejection = "unknown ticket type"
	RejectTooManyTickets    PurchaseRejection = "too many tickets"
	RejectAdultRequired     PurchaseRejection = "adult required"
	RejectEmptyOrder        PurchaseRejection = "empty order"
)

func (r PurchaseRejection) Description() string {
	switch r {
	case RejectInvalidAccount:
		return "Account ID must be a positive number"
	case RejectNegativeCount:
		return "Ticket count cannot be negative"
	case RejectUnknownTicketType:
		return "Ticket type must be one of ADULT, CHILD or INFANT"
	case RejectTooManyTickets:
		return fmt.Sprintf("Cannot purchase more than %d tickets", MaxTicketsPerPurchase)
	case RejectAdultRequired:
		return "Child or Infant tickets require at least one Adult"
	case RejectEmptyOrder:
		return "At least one ticket must be purchased"
	default:
		return string(r)
	}
}

type InvalidPurchaseError struct {
	Reason PurchaseRejection
}

func (e *InvalidPurchaseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPurchase, e.Reason)
}

func (e *InvalidPurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}

func invalidPurchase(reason PurchaseRejection) error {
	return &InvalidPurchaseError{Reason: reason}
}
