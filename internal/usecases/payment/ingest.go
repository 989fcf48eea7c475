package payment

import (
	"context"
	"errors"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/persistence"
	"github.com/google/uuid"
)

// IngestCheckoutEvent processes one verified webhook event. Only completed
// checkout sessions are acted on. The payment insert and the credit reset
// commit atomically; a redelivered event becomes a no-op and leaves the
// ledger untouched.
func (s *Service) IngestCheckoutEvent(ctx context.Context, event *domain.CheckoutEvent) (domain.IngestOutcome, error) {
	if event.EventType != domain.CheckoutEventTypeCompleted {
		s.Log.Debug("ignoring payment event", "event_type", event.EventType)
		return domain.IngestIgnored, nil
	}

	if event.Data.ID == "" {
		return "", &domain.PaymentRejectedError{Reason: "missing checkout session id"}
	}

	email, err := s.resolveEmail(ctx, &event.Data)
	if err != nil {
		return "", err
	}

	outcome := domain.IngestNoOp

	err = s.PaymentRepo.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		user, err := s.UserRepo.GetByEmailTx(ctx, tx, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return &domain.PaymentRejectedError{Reason: "no account for payer email"}
			}
			return err
		}

		record := &domain.PaymentRecord{
			ID:                    uuid.New(),
			UserID:                user.ID,
			ExternalTransactionID: event.Data.ID,
			Amount:                event.Data.AmountTotal,
			Status:                domain.PaymentStatusPaid,
			CreatedAt:             time.Now().UTC(),
		}

		inserted, err := s.PaymentRepo.InsertIdempotentTx(ctx, tx, record)
		if err != nil {
			return err
		}

		if !inserted {
			// duplicate delivery, nothing else to do
			return nil
		}

		if err := s.CreditRepo.ResetTx(ctx, tx, user.ID); err != nil {
			return err
		}

		outcome = domain.IngestAccepted
		return nil
	})
	if err != nil {
		return "", err
	}

	if outcome == domain.IngestAccepted {
		s.Log.Info("payment accepted",
			"external_id", event.Data.ID,
			"amount", event.Data.AmountTotal,
		)
	} else {
		s.Log.Info("duplicate payment ignored", "external_id", event.Data.ID)
	}

	return outcome, nil
}

// resolveEmail finds the payer e-mail: the session field first, then the
// nested customer details, then a provider API lookup by customer id
func (s *Service) resolveEmail(ctx context.Context, data *domain.CheckoutData) (string, error) {
	if data.CustomerEmail != "" {
		return data.CustomerEmail, nil
	}

	if data.CustomerDetails != nil && data.CustomerDetails.Email != "" {
		return data.CustomerDetails.Email, nil
	}

	if data.CustomerID != "" && s.CustomerLookup != nil {
		email, err := s.CustomerLookup.CustomerEmail(ctx, data.CustomerID)
		if err != nil {
			s.Log.Warn("customer email lookup failed",
				"error", err,
				"customer_id", data.CustomerID,
			)
		} else if email != "" {
			return email, nil
		}
	}

	return "", &domain.PaymentRejectedError{Reason: "no payer email on checkout session"}
}
