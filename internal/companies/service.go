package companies

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/McFranco99/ToolHR/internal/licensing"
	"github.com/McFranco99/ToolHR/internal/plans"
	"github.com/McFranco99/ToolHR/internal/subscriptions"
)

var (
	// ErrSeatsBelowPlan indicates the requested seat count is under the plan's included seats.
	ErrSeatsBelowPlan = errors.New("seats cannot be below the plan's included seats")
	// ErrSeatsBelowActive indicates the requested seat count is under the current active user count.
	ErrSeatsBelowActive = errors.New("seats cannot be below the number of active users")
	// ErrNoActiveSubscription indicates the company has no active subscription to update.
	ErrNoActiveSubscription = errors.New("active subscription not found")
	// ErrInvalidInput flags validation failures surfaced as 400s.
	ErrInvalidInput = errors.New("invalid input")
)

// Service contains business logic for companies and their subscriptions.
type Service struct {
	Repo  Repo
	Plans *plans.Service
	Subs  subscriptions.Repo
	Seats *licensing.Service
}

// Detail bundles a company with its active subscription and plan, either of
// which may be absent.
type Detail struct {
	Company      Company
	Subscription *subscriptions.Subscription
	Plan         *plans.Plan
}

// CreateParams describes a company creation request.
type CreateParams struct {
	Name       string
	VATNumber  string
	PlanName   string
	SeatsTotal int
}

// Create provisions a company together with its subscription. The plan is
// created on first use with the requested seat count as its included seats.
func (s *Service) Create(ctx context.Context, params CreateParams) (Company, subscriptions.Subscription, plans.Plan, error) {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return Company{}, subscriptions.Subscription{}, plans.Plan{}, ErrInvalidInput
	}
	if params.PlanName == "" {
		params.PlanName = "Base"
	}
	if params.SeatsTotal <= 0 {
		params.SeatsTotal = 3
	}

	if _, err := s.Repo.GetByName(ctx, params.Name); err == nil {
		return Company{}, subscriptions.Subscription{}, plans.Plan{}, ErrNameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Company{}, subscriptions.Subscription{}, plans.Plan{}, err
	}

	plan, err := s.Plans.GetOrCreate(ctx, params.PlanName, params.SeatsTotal)
	if err != nil {
		return Company{}, subscriptions.Subscription{}, plans.Plan{}, err
	}
	if params.SeatsTotal < plan.IncludedSeats {
		return Company{}, subscriptions.Subscription{}, plans.Plan{}, ErrSeatsBelowPlan
	}

	company := Company{
		ID:        uuid.NewString(),
		Name:      params.Name,
		VATNumber: strings.TrimSpace(params.VATNumber),
		IsActive:  true,
	}
	if err := s.Repo.Create(ctx, company); err != nil {
		return Company{}, subscriptions.Subscription{}, plans.Plan{}, err
	}

	sub := subscriptions.Subscription{
		ID:         uuid.NewString(),
		CompanyID:  company.ID,
		PlanID:     plan.ID,
		SeatsTotal: params.SeatsTotal,
		Status:     subscriptions.StatusActive,
	}
	if err := s.Subs.Create(ctx, sub); err != nil {
		return Company{}, subscriptions.Subscription{}, plans.Plan{}, err
	}

	return company, sub, plan, nil
}

// Get returns the company with its active subscription and plan.
func (s *Service) Get(ctx context.Context, companyID string) (Detail, error) {
	company, err := s.Repo.GetByID(ctx, companyID)
	if err != nil {
		return Detail{}, err
	}

	detail := Detail{Company: company}
	sub, err := s.Subs.GetActiveByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, subscriptions.ErrNotFound) {
			return detail, nil
		}
		return Detail{}, err
	}
	detail.Subscription = &sub

	plan, err := s.Plans.GetByID(ctx, sub.PlanID)
	if err != nil {
		if errors.Is(err, plans.ErrNotFound) {
			return detail, nil
		}
		return Detail{}, err
	}
	detail.Plan = &plan
	return detail, nil
}

func (s *Service) List(ctx context.Context, q string, limit, offset int) ([]Company, error) {
	return s.Repo.List(ctx, q, limit, offset)
}

// UpdateParams carries a partial company update; nil fields are left untouched.
type UpdateParams struct {
	Name      *string
	VATNumber *string
	IsActive  *bool
}

// Update applies a partial update, re-checking name uniqueness on rename.
func (s *Service) Update(ctx context.Context, companyID string, params UpdateParams) (Company, error) {
	company, err := s.Repo.GetByID(ctx, companyID)
	if err != nil {
		return Company{}, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return Company{}, ErrInvalidInput
		}
		if existing, err := s.Repo.GetByName(ctx, name); err == nil && existing.ID != companyID {
			return Company{}, ErrNameTaken
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return Company{}, err
		}
		company.Name = name
	}
	if params.VATNumber != nil {
		company.VATNumber = strings.TrimSpace(*params.VATNumber)
	}
	if params.IsActive != nil {
		company.IsActive = *params.IsActive
	}

	if err := s.Repo.Update(ctx, company); err != nil {
		return Company{}, err
	}
	return company, nil
}

// Usage returns the company's seat consumption snapshot.
func (s *Service) Usage(ctx context.Context, companyID string) (licensing.Usage, error) {
	if _, err := s.Repo.GetByID(ctx, companyID); err != nil {
		return licensing.Usage{}, err
	}
	return s.Seats.Snapshot(ctx, companyID)
}

// SubscriptionUpdateParams carries a partial subscription update.
type SubscriptionUpdateParams struct {
	SeatsTotal *int
	Status     *string
}

// UpdateSubscription changes seats or status on the company's active
// subscription. Seats can never drop below the current active user count.
func (s *Service) UpdateSubscription(ctx context.Context, companyID string, params SubscriptionUpdateParams) (Detail, error) {
	company, err := s.Repo.GetByID(ctx, companyID)
	if err != nil {
		return Detail{}, err
	}

	sub, err := s.Subs.GetActiveByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, subscriptions.ErrNotFound) {
			return Detail{}, ErrNoActiveSubscription
		}
		return Detail{}, err
	}

	if params.SeatsTotal != nil {
		if *params.SeatsTotal <= 0 {
			return Detail{}, ErrInvalidInput
		}
		usage, err := s.Seats.Snapshot(ctx, companyID)
		if err != nil {
			return Detail{}, err
		}
		if *params.SeatsTotal < usage.ActiveUsers {
			return Detail{}, ErrSeatsBelowActive
		}
		sub.SeatsTotal = *params.SeatsTotal
	}
	if params.Status != nil {
		if !subscriptions.ValidStatus(*params.Status) {
			return Detail{}, ErrInvalidInput
		}
		sub.Status = *params.Status
	}

	if err := s.Subs.Update(ctx, sub); err != nil {
		return Detail{}, err
	}

	detail := Detail{Company: company, Subscription: &sub}
	if plan, err := s.Plans.GetByID(ctx, sub.PlanID); err == nil {
		detail.Plan = &plan
	} else if !errors.Is(err, plans.ErrNotFound) {
		return Detail{}, err
	}
	return detail, nil
}
