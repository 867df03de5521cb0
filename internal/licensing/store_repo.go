package licensing

import (
	"context"
	"errors"

	"github.com/McFranco99/ToolHR/internal/subscriptions"
)

// ActiveCounter counts a company's active users. Implemented by users.MemoryRepo.
type ActiveCounter interface {
	CountActive(ctx context.Context, companyID string) (int, error)
}

type repoStore struct {
	Subs  subscriptions.Repo
	Users ActiveCounter
}

// NewRepoStore constructs a store that reads through repositories. Used when
// the app runs without a database.
func NewRepoStore(subs subscriptions.Repo, users ActiveCounter) *repoStore {
	return &repoStore{Subs: subs, Users: users}
}

func (s *repoStore) Snapshot(ctx context.Context, companyID string) (Usage, error) {
	seats := 0
	sub, err := s.Subs.GetActiveByCompany(ctx, companyID)
	if err == nil {
		seats = sub.SeatsTotal
	} else if !errors.Is(err, subscriptions.ErrNotFound) {
		return Usage{}, err
	}

	active, err := s.Users.CountActive(ctx, companyID)
	if err != nil {
		return Usage{}, err
	}

	available := seats - active
	if available < 0 {
		available = 0
	}
	return Usage{
		CompanyID:      companyID,
		ActiveUsers:    active,
		SeatsTotal:     seats,
		AvailableSeats: available,
	}, nil
}
