package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/McFranco99/ToolHR/internal/licensing"
)

// ErrInvalidInput flags validation failures surfaced as 400s.
var ErrInvalidInput = errors.New("invalid input")

// Service contains business logic for HR users and seat enforcement.
type Service struct {
	Repo      Repo
	Companies CompanyDirectory
	Seats     *licensing.Service
}

// CreateParams describes a user creation request.
type CreateParams struct {
	Email    string
	FullName string
	Role     string
}

// Create registers an active user for a company if a seat is available.
// Emails are unique across all companies.
func (s *Service) Create(ctx context.Context, companyID string, params CreateParams) (User, error) {
	params.Email = strings.TrimSpace(strings.ToLower(params.Email))
	params.FullName = strings.TrimSpace(params.FullName)
	if params.Email == "" || !strings.Contains(params.Email, "@") || params.FullName == "" {
		return User{}, ErrInvalidInput
	}
	if params.Role == "" {
		params.Role = RoleHRUser
	}

	if err := s.Companies.Exists(ctx, companyID); err != nil {
		return User{}, err
	}

	if _, err := s.Repo.GetByEmail(ctx, params.Email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	ok, _, err := s.Seats.CanAddUser(ctx, companyID)
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, licensing.ErrSeatLimitReached
	}

	user := User{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Email:     params.Email,
		FullName:  params.FullName,
		Role:      params.Role,
		IsActive:  true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// SetActive toggles a user's active flag. Reactivating a deactivated user
// re-checks seat availability.
func (s *Service) SetActive(ctx context.Context, companyID, userID string, active bool) (User, error) {
	if err := s.Companies.Exists(ctx, companyID); err != nil {
		return User{}, err
	}

	user, err := s.Repo.GetByID(ctx, companyID, userID)
	if err != nil {
		return User{}, err
	}

	if active && !user.IsActive {
		ok, _, err := s.Seats.CanAddUser(ctx, companyID)
		if err != nil {
			return User{}, err
		}
		if !ok {
			return User{}, licensing.ErrSeatLimitReached
		}
	}

	user.IsActive = active
	if err := s.Repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// List returns a page of the company's users.
func (s *Service) List(ctx context.Context, companyID string, limit, offset int) ([]User, error) {
	if err := s.Companies.Exists(ctx, companyID); err != nil {
		return nil, err
	}
	return s.Repo.ListByCompany(ctx, companyID, limit, offset)
}
