package ticketing

import (
	"context"
	"errors"
	"log/slog"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/cinema-tickets/internal/ticketing"

const (
	outcomeCompleted      = "completed"
	outcomeRejected       = "rejected"
	outcomePaymentFailed  = "payment_failed"
	outcomeReserveFailed  = "reservation_failed"
	attrPurchaseOutcome   = "purchase.outcome"
	attrPurchaseRejection = "purchase.rejection"
)

// TicketService validates and prices a purchase, then pays for it and
// reserves its seats. It holds no mutable state and is safe for concurrent use.
type TicketService struct {
	logger       *slog.Logger
	payments     domain.PaymentService
	reservations domain.SeatReservationService
	tracer       trace.Tracer
	purchases    metric.Int64Counter
}

func NewTicketService(
	logger *slog.Logger,
	payments domain.PaymentService,
	reservations domain.SeatReservationService) (*TicketService, error) {

	purchases, err := otel.Meter(instrumentationName).Int64Counter(
		"ticket_purchases",
		metric.WithDescription("Ticket purchase attempts by outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &TicketService{
		logger:       logger,
		payments:     payments,
		reservations: reservations,
		tracer:       otel.Tracer(instrumentationName),
		purchases:    purchases,
	}, nil
}

// Quote validates and prices a purchase without paying or reserving anything.
func (s *TicketService) Quote(accountID int64, requests ...domain.TicketTypeRequest) (*domain.PurchaseSummary, error) {
	err := domain.ValidatePurchase(accountID, requests...)
	if err != nil {
		return nil, err
	}

	return domain.NewPurchaseSummary(accountID, requests...), nil
}

// PurchaseTickets pays for and reserves a valid purchase. Errors from the
// payment and reservation services are returned as they are; a failed payment
// means no reservation is attempted and nothing is rolled back.
func (s *TicketService) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	requests ...domain.TicketTypeRequest) (*domain.PurchaseSummary, error) {

	ctx, span := s.tracer.Start(ctx, "TicketService.PurchaseTickets",
		trace.WithAttributes(attribute.Int64("account.id", accountID)))
	defer span.End()

	logger := s.logger.With("account_id", accountID)

	summary, err := s.Quote(accountID, requests...)
	if err != nil {
		var purchaseErr *domain.InvalidPurchaseError
		if errors.As(err, &purchaseErr) {
			logger.Warn("ticket purchase rejected", "reason", purchaseErr.Reason)
			span.SetAttributes(attribute.String(attrPurchaseRejection, string(purchaseErr.Reason)))
		}

		s.record(ctx, span, outcomeRejected, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("purchase.total_amount", summary.TotalAmount),
		attribute.Int("purchase.seats", summary.SeatsToReserve),
	)

	err = s.payments.MakePayment(ctx, accountID, summary.TotalAmount)
	if err != nil {
		logger.Error("ticket payment failed", "amount", summary.TotalAmount, "error", err)
		s.record(ctx, span, outcomePaymentFailed, err)
		return nil, err
	}

	err = s.reservations.ReserveSeat(ctx, accountID, summary.SeatsToReserve)
	if err != nil {
		logger.Error("seat reservation failed after payment", "seats", summary.SeatsToReserve, "error", err)
		s.record(ctx, span, outcomeReserveFailed, err)
		return nil, err
	}

	logger.Info("ticket purchase completed",
		"total_amount", summary.TotalAmount,
		"seats", summary.SeatsToReserve,
		"tickets", summary.TicketCount,
	)
	s.record(ctx, span, outcomeCompleted, nil)

	return summary, nil
}

func (s *TicketService) record(ctx context.Context, span trace.Span, outcome string, err error) {
	s.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String(attrPurchaseOutcome, outcome)))
	span.SetAttributes(attribute.String(attrPurchaseOutcome, outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
}
