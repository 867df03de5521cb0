package companies

import (
	"time"

	"github.com/McFranco99/ToolHR/internal/plans"
	"github.com/McFranco99/ToolHR/internal/subscriptions"
)

// CompanyResponse is the outward-facing representation of a company.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	VATNumber string    `json:"vatNumber,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// DetailResponse is the company detail view with subscription and plan.
type DetailResponse struct {
	Company      CompanyResponse             `json:"company"`
	Subscription *subscriptions.Subscription `json:"subscription"`
	Plan         *plans.Plan                 `json:"plan"`
}

// CreatedResponse confirms a company + subscription provisioning.
type CreatedResponse struct {
	CompanyID  string `json:"companyId"`
	Plan       string `json:"plan"`
	SeatsTotal int    `json:"seatsTotal"`
}

func toResponse(company Company) CompanyResponse {
	return CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		VATNumber: company.VATNumber,
		IsActive:  company.IsActive,
		CreatedAt: company.CreatedAt,
	}
}

func toDetailResponse(detail Detail) DetailResponse {
	return DetailResponse{
		Company:      toResponse(detail.Company),
		Subscription: detail.Subscription,
		Plan:         detail.Plan,
	}
}
