package subscriptions

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("subscription not found")

type Repo interface {
	Create(ctx context.Context, sub Subscription) error
	// GetActiveByCompany returns the company's current active subscription.
	GetActiveByCompany(ctx context.Context, companyID string) (Subscription, error)
	GetByCompany(ctx context.Context, companyID string) (Subscription, error)
	Update(ctx context.Context, sub Subscription) error
}
