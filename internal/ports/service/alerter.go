package service

import (
	"context"
)

// IAlerterService delivers operational alerts.
type IAlerterService interface {
	SendAlert(ctx context.Context, message string) error
}
