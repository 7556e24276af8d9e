package mocks

import (
	"context"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatReservationService struct {
	mock.Mock
	domain.SeatReservationService
}

func (m *MockSeatReservationService) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	args := m.Called(ctx, accountID, seats)
	return args.Error(0)
}

type MockReservedSeatsReader struct {
	mock.Mock
	domain.ReservedSeatsReader
}

func (m *MockReservedSeatsReader) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}
