package plans

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Service contains business logic for plans.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create registers a new plan; the name must be unique.
func (s *Service) Create(ctx context.Context, name string, includedSeats int) (Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Plan{}, errors.New("plan name is required")
	}
	if includedSeats <= 0 {
		includedSeats = 3
	}

	if _, err := s.Repo.GetByName(ctx, name); err == nil {
		return Plan{}, ErrNameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Plan{}, err
	}

	plan := Plan{
		ID:            uuid.NewString(),
		Name:          name,
		IncludedSeats: includedSeats,
	}
	if err := s.Repo.Create(ctx, plan); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// GetOrCreate returns the plan with the given name, creating it if absent.
func (s *Service) GetOrCreate(ctx context.Context, name string, includedSeats int) (Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Plan{}, errors.New("plan name is required")
	}
	plan, err := s.Repo.GetByName(ctx, name)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Plan{}, err
	}
	return s.Create(ctx, name, includedSeats)
}

func (s *Service) GetByID(ctx context.Context, planID string) (Plan, error) {
	return s.Repo.GetByID(ctx, planID)
}

func (s *Service) List(ctx context.Context) ([]Plan, error) {
	return s.Repo.List(ctx)
}
