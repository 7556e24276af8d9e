package payment

import (
	"context"
	"log/slog"
)

// LogPaymentService accepts every payment and only logs it. It stands in for
// Stripe when no secret key is configured.
type LogPaymentService struct {
	logger *slog.Logger
}

func NewLogPaymentService(logger *slog.Logger) *LogPaymentService {
	return &LogPaymentService{
		logger: logger,
	}
}

func (l *LogPaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	l.logger.InfoContext(ctx, "payment accepted", "account_id", accountID, "amount", amount)
	return nil
}
