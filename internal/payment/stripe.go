package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

var ErrPaymentNotCompleted = errors.New("payment not completed")

var minorUnitsPerMajor = decimal.NewFromInt(100)

type paymentIntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// StripePaymentService charges a purchase by creating and confirming a Stripe
// PaymentIntent against a configured payment method. The charge only counts
// as made once the intent has succeeded.
type StripePaymentService struct {
	currency      string
	paymentMethod string
	customer      string
	create        paymentIntentCreator
}

func NewStripePaymentService(currency, paymentMethod, customer string) *StripePaymentService {
	return &StripePaymentService{
		currency:      currency,
		paymentMethod: paymentMethod,
		customer:      customer,
		create:        paymentintent.New,
	}
}

func (s *StripePaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	params := s.newPaymentIntentParams(ctx, accountID, amount, uuid.NewString())

	intent, err := s.create(params)
	if err != nil {
		return fmt.Errorf("stripe payment for account %d: %w", accountID, err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("stripe payment for account %d: intent %s is %s: %w",
			accountID, intent.ID, intent.Status, ErrPaymentNotCompleted)
	}

	return nil
}

func (s *StripePaymentService) newPaymentIntentParams(
	ctx context.Context,
	accountID int64,
	amount int,
	idempotencyKey string) *stripe.PaymentIntentParams {

	amountMinor := decimal.NewFromInt(int64(amount)).Mul(minorUnitsPerMajor).IntPart()
	account := strconv.FormatInt(accountID, 10)

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountMinor),
		Currency:      stripe.String(s.currency),
		Description:   stripe.String(fmt.Sprintf("Cinema tickets for account %s", account)),
		PaymentMethod: stripe.String(s.paymentMethod),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String(string(stripe.PaymentIntentAutomaticPaymentMethodsAllowRedirectsNever)),
		},
	}

	if s.customer != "" {
		params.Customer = stripe.String(s.customer)
	}

	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)
	params.AddMetadata("account_id", account)

	return params
}
