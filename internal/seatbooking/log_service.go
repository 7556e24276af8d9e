package seatbooking

import (
	"context"
	"log/slog"
)

// LogSeatReservationService accepts every reservation and only logs it.
type LogSeatReservationService struct {
	logger *slog.Logger
}

func NewLogSeatReservationService(logger *slog.Logger) *LogSeatReservationService {
	return &LogSeatReservationService{
		logger: logger,
	}
}

func (l *LogSeatReservationService) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	l.logger.InfoContext(ctx, "seats reserved", "account_id", accountID, "seats", seats)
	return nil
}
