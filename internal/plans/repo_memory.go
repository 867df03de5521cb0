package plans

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	plans map[string]Plan
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{plans: make(map[string]Plan)}
}

func (r *MemoryRepo) Create(ctx context.Context, plan Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.plans {
		if existing.Name == plan.Name {
			return ErrNameTaken
		}
	}
	r.plans[plan.ID] = plan
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, planID string) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[planID]
	if !ok {
		return Plan{}, ErrNotFound
	}
	return plan, nil
}

func (r *MemoryRepo) GetByName(ctx context.Context, name string) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, plan := range r.plans {
		if plan.Name == name {
			return plan, nil
		}
	}
	return Plan{}, ErrNotFound
}

func (r *MemoryRepo) List(ctx context.Context) ([]Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Plan, 0, len(r.plans))
	for _, plan := range r.plans {
		out = append(out, plan)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
