package plans

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, plan Plan) error {
	const query = `
INSERT INTO plans (id, name, included_seats)
VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, plan.ID, plan.Name, plan.IncludedSeats)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, planID string) (Plan, error) {
	const query = `
SELECT id, name, included_seats
FROM plans
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, planID))
}

func (r *PGRepo) GetByName(ctx context.Context, name string) (Plan, error) {
	const query = `
SELECT id, name, included_seats
FROM plans
WHERE name = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, name))
}

func (r *PGRepo) List(ctx context.Context) ([]Plan, error) {
	const query = `
SELECT id, name, included_seats
FROM plans
ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Plan
	for rows.Next() {
		var plan Plan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.IncludedSeats); err != nil {
			return nil, err
		}
		out = append(out, plan)
	}
	return out, rows.Err()
}

func (r *PGRepo) scanOne(row *sql.Row) (Plan, error) {
	var plan Plan
	err := row.Scan(&plan.ID, &plan.Name, &plan.IncludedSeats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Plan{}, ErrNotFound
		}
		return Plan{}, err
	}
	return plan, nil
}
