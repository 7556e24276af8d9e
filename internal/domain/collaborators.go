package domain

import "context"

type PaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, seats int) error
}

// ReservedSeatsReader reports the running number of seats an account has
// reserved. Only seat reservation services that keep state implement it.
type ReservedSeatsReader interface {
	ReservedSeats(ctx context.Context, accountID int64) (int, error)
}
