package domain

const (
	adultTicketPrice  = 25
	childTicketPrice  = 15
	infantTicketPrice = 0
)

func (t TicketType) UnitPrice() int {
	switch t {
	case Adult:
		return adultTicketPrice
	case Child:
		return childTicketPrice
	case Infant:
		return infantTicketPrice
	default:
		return 0
	}
}

// Seats is the number of seats one ticket of this type occupies. Infants sit
// on an adult's lap.
func (t TicketType) Seats() int {
	switch t {
	case Adult, Child:
		return 1
	case Infant:
		return 0
	default:
		return 0
	}
}

type TicketPrice struct {
	Type      TicketType
	UnitPrice int
	Seats     int
}

func TicketPrices() []TicketPrice {
	prices := make([]TicketPrice, len(TicketTypes))

	for i, t := range TicketTypes {
		prices[i] = TicketPrice{
			Type:      t,
			UnitPrice: t.UnitPrice(),
			Seats:     t.Seats(),
		}
	}

	return prices
}

// TotalAmount assumes the requests already passed ValidatePurchase.
func TotalAmount(requests ...TicketTypeRequest) int {
	total := 0

	for _, req := range requests {
		total += req.NoOfTickets * req.Type.UnitPrice()
	}

	return total
}

// SeatsToReserve assumes the requests already passed ValidatePurchase.
func SeatsToReserve(requests ...TicketTypeRequest) int {
	seats := 0

	for _, req := range requests {
		seats += req.NoOfTickets * req.Type.Seats()
	}

	return seats
}
