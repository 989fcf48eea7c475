package app

import (
	paymentController "github.com/AndreaVaz0608/skyai/internal/adapters/primary/http/controllers/payment"
	stripeAdapter "github.com/AndreaVaz0608/skyai/internal/adapters/secondary/payment/stripe"
	"github.com/AndreaVaz0608/skyai/internal/ports/service"
	paymentUsecase "github.com/AndreaVaz0608/skyai/internal/usecases/payment"
)

// initPayment wires payment ingestion. Returns nil when Stripe is not
// configured; the webhook route is simply not registered then.
func (a *App) initPayment(
	repos *repositories,
	alerterSvc service.IAlerterService,
) *paymentController.PaymentController {
	if a.Cfg.Stripe == nil || a.Cfg.Stripe.WebhookSecret == "" {
		a.Log.Warn("stripe is not configured, payment ingestion disabled")
		return nil
	}

	var customerLookup service.ICustomerLookup
	if a.Cfg.Stripe.ApiKey != "" {
		customerLookup = stripeAdapter.NewCustomerClient(a.Cfg.Stripe, a.Log)
	}

	paymentService := paymentUsecase.New(
		repos.Payment,
		repos.User,
		repos.Credit,
		customerLookup, // may be nil
		alerterSvc,     // may be nil
		a.Log,
	)

	verifier := stripeAdapter.NewVerifier(a.Cfg.Stripe, a.Log)

	a.Log.Info("payment ingestion initialized")
	return paymentController.New(paymentService, verifier, a.Log)
}
