package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus of a recorded payment. The webhook only ever stores paid
// confirmations; other states exist for manual corrections.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentRecord is one confirmed checkout. external_transaction_id is
// unique; a duplicate webhook delivery is a no-op, not an error.
type PaymentRecord struct {
	ID                    uuid.UUID     `json:"id" db:"id"`
	UserID                uuid.UUID     `json:"user_id" db:"user_id"`
	ExternalTransactionID string        `json:"external_transaction_id" db:"external_transaction_id"`
	Amount                int64         `json:"amount" db:"amount"` // minor currency units
	Status                PaymentStatus `json:"status" db:"status"`
	CreatedAt             time.Time     `json:"created_at" db:"created_at"`
}

// CheckoutEventTypeCompleted is the only event class acted upon.
const CheckoutEventTypeCompleted = "checkout.session.completed"

// CheckoutEvent is the decoded webhook body.
type CheckoutEvent struct {
	EventType string       `json:"event_type"`
	Data      CheckoutData `json:"data"`
}

// CheckoutData carries the checkout session payload. The payer e-mail may
// appear directly, nested in customer details, or only be reachable through
// the external customer id.
type CheckoutData struct {
	ID              string           `json:"id"`
	AmountTotal     int64            `json:"amount_total"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerDetails *CustomerDetails `json:"customer_details"`
	CustomerID      string           `json:"customer_id"`
}

// CustomerDetails is the nested detail object of a checkout session.
type CustomerDetails struct {
	Email string `json:"email"`
}

// IngestOutcome distinguishes a fresh insert from a detected duplicate.
// Rejection travels separately as *PaymentRejectedError.
type IngestOutcome string

const (
	IngestAccepted IngestOutcome = "accepted"
	IngestNoOp     IngestOutcome = "no_op"
	IngestIgnored  IngestOutcome = "ignored" // non-checkout event classes
)
