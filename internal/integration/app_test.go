package integration_test

import (
	"log/slog"
	"os"

	"github.com/metinatakli/cinema-tickets/internal/app"
	"github.com/metinatakli/cinema-tickets/internal/payment"
	"github.com/metinatakli/cinema-tickets/internal/seatbooking"
	"github.com/metinatakli/cinema-tickets/internal/ticketing"
	appvalidator "github.com/metinatakli/cinema-tickets/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App          *app.Application
	Redis        *redis.Client
	Reservations *seatbooking.RedisSeatReservationService
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	reservations := seatbooking.NewRedisSeatReservationService(redisClient)
	payments := payment.NewLogPaymentService(logger)

	tickets, err := ticketing.NewTicketService(logger, payments, reservations)
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	application := app.NewApp(cfg, logger, validator, tickets, reservations)

	return &TestApp{
		App:          application,
		Redis:        redisClient,
		Reservations: reservations,
	}, nil
}
