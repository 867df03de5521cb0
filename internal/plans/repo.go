package plans

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("plan not found")
	ErrNameTaken = errors.New("plan name already exists")
)

type Repo interface {
	Create(ctx context.Context, plan Plan) error
	GetByID(ctx context.Context, planID string) (Plan, error)
	GetByName(ctx context.Context, name string) (Plan, error)
	List(ctx context.Context) ([]Plan, error)
}
