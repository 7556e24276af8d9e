package domain

const MaxTicketsPerPurchase = 25

type ticketTally struct {
	adult  int
	child  int
	infant int
	total  int
}

func countTickets(requests []TicketTypeRequest) ticketTally {
	var tally ticketTally

	for _, req := range requests {
		switch req.Type {
		case Adult:
			tally.adult += req.NoOfTickets
		case Child:
			tally.child += req.NoOfTickets
		case Infant:
			tally.infant += req.NoOfTickets
		}

		tally.total += req.NoOfTickets
	}

	return tally
}

// ValidatePurchase reports the first rule a purchase breaks as an
// *InvalidPurchaseError, or nil when the purchase may go ahead.
func ValidatePurchase(accountID int64, requests ...TicketTypeRequest) error {
	if accountID <= 0 {
		return invalidPurchase(RejectInvalidAccount)
	}

	for _, req := range requests {
		if req.NoOfTickets < 0 {
			return invalidPurchase(RejectNegativeCount)
		}

		if !req.Type.Valid() {
			return invalidPurchase(RejectUnknownTicketType)
		}
	}

	// compared against the remaining allowance so the running total never overflows
	total := 0
	for _, req := range requests {
		if req.NoOfTickets > MaxTicketsPerPurchase-total {
			return invalidPurchase(RejectTooManyTickets)
		}

		total += req.NoOfTickets
	}

	tally := countTickets(requests)

	if tally.adult == 0 && (tally.child > 0 || tally.infant > 0) {
		return invalidPurchase(RejectAdultRequired)
	}

	if tally.total == 0 {
		return invalidPurchase(RejectEmptyOrder)
	}

	return nil
}
