package service

import "context"

// ICustomerLookup resolves a payment-provider customer id to an e-mail.
// Used when the checkout payload itself carries no address.
type ICustomerLookup interface {
	CustomerEmail(ctx context.Context, customerID string) (string, error)
}
