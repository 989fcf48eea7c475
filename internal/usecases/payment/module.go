package payment

import (
	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/ports/repository"
	"github.com/AndreaVaz0608/skyai/internal/ports/service"
)

// Service ingests payment provider webhooks: verification lives in the
// transport layer, this service owns the idempotent insert and credit reset
type Service struct {
	PaymentRepo    repository.IPaymentRepo
	UserRepo       repository.IUserRepo
	CreditRepo     repository.ICreditRepo
	CustomerLookup service.ICustomerLookup
	AlerterService service.IAlerterService
	Log            *slog.Logger
}

// New creates the payment service. CustomerLookup and alerter may be nil.
func New(
	paymentRepo repository.IPaymentRepo,
	userRepo repository.IUserRepo,
	creditRepo repository.ICreditRepo,
	customerLookup service.ICustomerLookup,
	alerterService service.IAlerterService,
	log *slog.Logger,
) *Service {
	return &Service{
		PaymentRepo:    paymentRepo,
		UserRepo:       userRepo,
		CreditRepo:     creditRepo,
		CustomerLookup: customerLookup,
		AlerterService: alerterService,
		Log:            log,
	}
}
