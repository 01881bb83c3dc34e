package booking

import (
	"fmt"

	"teacherdekho/models"
	"teacherdekho/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CreatePaymentIntent creates a Stripe payment intent for the booking's
// monthly price and moves the booking out of the free-trial state
// (paymentStatus pending -> required). Amounts are INR paise.
func (s *DefaultBookingService) CreatePaymentIntent(bookingID string) (string, error) {
	logger := utils.GetLogger()

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return "", err
	}
	if b.PaymentStatus == models.PaymentPaid {
		return "", fmt.Errorf("booking %s is already paid", bookingID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(b.MonthlyPrice * 100)),
		Currency: stripe.String(string(stripe.CurrencyINR)),
	}
	params.AddMetadata("bookingId", b.ID)
	params.AddMetadata("studentId", b.StudentID)
	params.AddMetadata("planType", string(b.PlanType))

	pi, err := paymentintent.New(params)
	if err != nil {
		logger.Error("payment intent creation failed", zap.String("bookingID", b.ID), zap.Error(err))
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	if err := s.Repo.SetPaymentStatus(b.ID, models.PaymentRequired, pi.ID); err != nil {
		return "", err
	}
	logger.Info("payment intent created",
		zap.String("bookingID", b.ID), zap.String("intentID", pi.ID))
	return pi.ClientSecret, nil
}

// MarkPaid records a completed payment.
func (s *DefaultBookingService) MarkPaid(bookingID string) error {
	return s.Repo.SetPaymentStatus(bookingID, models.PaymentPaid, "")
}
