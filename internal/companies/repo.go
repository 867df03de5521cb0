package companies

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("company not found")
	ErrNameTaken = errors.New("company name already exists")
)

type Repo interface {
	Create(ctx context.Context, company Company) error
	GetByID(ctx context.Context, companyID string) (Company, error)
	GetByName(ctx context.Context, name string) (Company, error)
	// List returns companies ordered by creation, optionally filtered by a
	// case-insensitive name substring.
	List(ctx context.Context, q string, limit, offset int) ([]Company, error)
	Update(ctx context.Context, company Company) error
}
