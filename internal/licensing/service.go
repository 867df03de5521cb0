package licensing

import (
	"context"
	"errors"
)

// ErrSeatLimitReached indicates the company has no free seats left.
var ErrSeatLimitReached = errors.New("seat limit reached")

type store interface {
	Snapshot(ctx context.Context, companyID string) (Usage, error)
}

// Service answers seat availability questions via an underlying store.
type Service struct {
	store store
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store) *Service {
	return &Service{store: pgStore}
}

// NewRepoService constructs a Service that reads through in-memory repositories.
func NewRepoService(repoStore store) *Service {
	return &Service{store: repoStore}
}

// Snapshot returns the current seat usage for a company. A company with no
// active subscription has zero seats.
func (s *Service) Snapshot(ctx context.Context, companyID string) (Usage, error) {
	return s.store.Snapshot(ctx, companyID)
}

// CanAddUser reports whether the company has a free seat for one more active user.
func (s *Service) CanAddUser(ctx context.Context, companyID string) (bool, Usage, error) {
	u, err := s.store.Snapshot(ctx, companyID)
	if err != nil {
		return false, Usage{}, err
	}
	return u.ActiveUsers < u.SeatsTotal, u, nil
}
