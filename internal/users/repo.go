package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
	// ErrCompanyNotFound is returned when the addressed company does not exist.
	ErrCompanyNotFound = errors.New("company not found")
)

type Repo interface {
	Create(ctx context.Context, user User) error
	// GetByID scopes the lookup to a company; a user id from another tenant is not found.
	GetByID(ctx context.Context, companyID, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]User, error)
	Update(ctx context.Context, user User) error
	CountActive(ctx context.Context, companyID string) (int, error)
}

// CompanyDirectory confirms company existence for user operations.
// Implemented in bootstrap on top of the companies repository.
type CompanyDirectory interface {
	Exists(ctx context.Context, companyID string) error
}
