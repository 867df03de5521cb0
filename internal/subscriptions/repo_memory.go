package subscriptions

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	subs map[string]Subscription
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{subs: make(map[string]Subscription)}
}

func (r *MemoryRepo) Create(ctx context.Context, sub Subscription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ID] = sub
	return nil
}

func (r *MemoryRepo) GetActiveByCompany(ctx context.Context, companyID string) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return Subscription{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, sub := range r.subs {
		if sub.CompanyID == companyID && sub.Status == StatusActive {
			return sub, nil
		}
	}
	return Subscription{}, ErrNotFound
}

func (r *MemoryRepo) GetByCompany(ctx context.Context, companyID string) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return Subscription{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, sub := range r.subs {
		if sub.CompanyID == companyID {
			return sub, nil
		}
	}
	return Subscription{}, ErrNotFound
}

func (r *MemoryRepo) Update(ctx context.Context, sub Subscription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[sub.ID]; !ok {
		return ErrNotFound
	}
	r.subs[sub.ID] = sub
	return nil
}
