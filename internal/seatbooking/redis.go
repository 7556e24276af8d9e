package seatbooking

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const reservedSeatsTotalKey = "seat_reservations:total"

func seatReservationKey(accountID int64) string {
	return fmt.Sprintf("seat_reservations:account:%d", accountID)
}

// RedisSeatReservationService keeps a running count of reserved seats per
// account, plus an overall total, in Redis.
type RedisSeatReservationService struct {
	client redis.UniversalClient
}

func NewRedisSeatReservationService(client redis.UniversalClient) *RedisSeatReservationService {
	return &RedisSeatReservationService{
		client: client,
	}
}

func (r *RedisSeatReservationService) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	pipe := r.client.TxPipeline()

	pipe.IncrBy(ctx, seatReservationKey(accountID), int64(seats))
	pipe.IncrBy(ctx, reservedSeatsTotalKey, int64(seats))

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("reserve %d seat(s) for account %d: %w", seats, accountID, err)
	}

	return nil
}

func (r *RedisSeatReservationService) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	seats, err := r.client.Get(ctx, seatReservationKey(accountID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, err
	}

	return seats, nil
}
