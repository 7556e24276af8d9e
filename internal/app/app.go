package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/metinatakli/cinema-tickets/internal/payment"
	"github.com/metinatakli/cinema-tickets/internal/seatbooking"
	"github.com/metinatakli/cinema-tickets/internal/ticketing"
	appvalidator "github.com/metinatakli/cinema-tickets/internal/validator"
	"github.com/metinatakli/cinema-tickets/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/stripe/stripe-go/v82"
)

const serviceName = "cinema-tickets-api"

var (
	version = vcs.Version()
)

type Application struct {
	config        Config
	logger        *slog.Logger
	validator     *validator.Validate
	tickets       *ticketing.TicketService
	reservedSeats domain.ReservedSeatsReader
}

type Config struct {
	Port             int
	Env              string
	Redis            RedisConfig
	Stripe           StripeConfig
	OtelCollectorUrl string
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type StripeConfig struct {
	SecretKey     string
	Currency      string
	PaymentMethod string
	Customer      string
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	tickets *ticketing.TicketService,
	reservedSeats domain.ReservedSeatsReader) *Application {

	return &Application{
		config:        cfg,
		logger:        logger,
		validator:     validator,
		tickets:       tickets,
		reservedSeats: reservedSeats,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis address for seat reservations (empty logs reservations only)")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.Stripe.SecretKey, "stripe-key", "", "Stripe secret key (empty logs payments only)")
	flag.StringVar(&cfg.Stripe.Currency, "stripe-currency", "gbp", "Currency ticket prices are charged in")
	flag.StringVar(&cfg.Stripe.PaymentMethod, "stripe-payment-method", "pm_card_visa", "Stripe payment method confirmed for each purchase")
	flag.StringVar(&cfg.Stripe.Customer, "stripe-customer", "", "Stripe customer owning the payment method (optional)")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	app := &Application{
		config:    cfg,
		logger:    slog.New(slog.NewTextHandler(os.Stdout, nil)),
		validator: appvalidator.NewValidator(),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	payments := app.newPaymentService()

	reservations, closeReservations, err := app.newSeatReservationService()
	if err != nil {
		return err
	}
	defer closeReservations()

	app.tickets, err = ticketing.NewTicketService(app.logger, payments, reservations)
	if err != nil {
		return err
	}

	return app.run()
}

func (app *Application) newPaymentService() domain.PaymentService {
	if app.config.Stripe.SecretKey == "" {
		app.logger.Warn("stripe key not set, payments will only be logged")
		return payment.NewLogPaymentService(app.logger)
	}

	stripe.Key = app.config.Stripe.SecretKey

	return payment.NewStripePaymentService(
		app.config.Stripe.Currency,
		app.config.Stripe.PaymentMethod,
		app.config.Stripe.Customer,
	)
}

func (app *Application) newSeatReservationService() (domain.SeatReservationService, func(), error) {
	if app.config.Redis.URL == "" {
		app.logger.Warn("redis url not set, seat reservations will only be logged")
		return seatbooking.NewLogSeatReservationService(app.logger), func() {}, nil
	}

	redisClient, err := NewRedisClient(app.config)
	if err != nil {
		return nil, nil, err
	}

	closeClient := func() {
		err := redisClient.Close()
		if err != nil {
			app.logger.Error("failed to close redis client", "error", err)
		}
	}

	reservations := seatbooking.NewRedisSeatReservationService(redisClient)
	app.reservedSeats = reservations

	return reservations, closeClient, nil
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.logRequest)
	r.Use(app.recoverPanic)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthcheck", app.GetHealth)

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/prices", app.GetTicketPricesHandler)
			r.Post("/quotes", app.QuoteTicketsHandler)
			r.Post("/purchases", app.PurchaseTicketsHandler)
		})

		r.Get("/accounts/{accountId}/reserved-seats", func(w http.ResponseWriter, r *http.Request) {
			accountID, err := strconv.ParseInt(chi.URLParam(r, "accountId"), 10, 64)
			if err != nil || accountID <= 0 {
				app.badRequestResponse(w, r, errors.New("invalid account ID"))
				return
			}
			app.GetReservedSeatsHandler(w, r, accountID)
		})
	})

	return r
}
