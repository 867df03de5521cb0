package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/McFranco99/ToolHR/internal/companies"
	"github.com/McFranco99/ToolHR/internal/plans"
	"github.com/McFranco99/ToolHR/internal/subscriptions"
)

const (
	demoCompanyName = "Demo Srl"
	demoVATNumber   = "IT00000000000"
	demoPlanName    = "Base"
	demoSeats       = 3
)

// Service provisions the demo fixture. Safe to call repeatedly.
type Service struct {
	Plans     *plans.Service
	Companies companies.Repo
	Subs      subscriptions.Repo
}

// Result reports what the fixture resolved to.
type Result struct {
	CompanyID string `json:"companyId"`
	Plan      string `json:"plan"`
}

// Apply ensures the demo plan, company and subscription exist.
func (s *Service) Apply(ctx context.Context) (Result, error) {
	plan, err := s.Plans.GetOrCreate(ctx, demoPlanName, demoSeats)
	if err != nil {
		return Result{}, err
	}

	company, err := s.Companies.GetByName(ctx, demoCompanyName)
	if err != nil {
		if !errors.Is(err, companies.ErrNotFound) {
			return Result{}, err
		}
		company = companies.Company{
			ID:        uuid.NewString(),
			Name:      demoCompanyName,
			VATNumber: demoVATNumber,
			IsActive:  true,
		}
		if err := s.Companies.Create(ctx, company); err != nil {
			return Result{}, err
		}
	}

	if _, err := s.Subs.GetByCompany(ctx, company.ID); err != nil {
		if !errors.Is(err, subscriptions.ErrNotFound) {
			return Result{}, err
		}
		sub := subscriptions.Subscription{
			ID:         uuid.NewString(),
			CompanyID:  company.ID,
			PlanID:     plan.ID,
			SeatsTotal: demoSeats,
			Status:     subscriptions.StatusActive,
		}
		if err := s.Subs.Create(ctx, sub); err != nil {
			return Result{}, err
		}
	}

	return Result{CompanyID: company.ID, Plan: plan.Name}, nil
}
