package subscriptions

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, sub Subscription) error {
	const query = `
INSERT INTO subscriptions (id, company_id, plan_id, seats_total, status)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		sub.ID,
		sub.CompanyID,
		sub.PlanID,
		sub.SeatsTotal,
		sub.Status,
	)
	return err
}

func (r *PGRepo) GetActiveByCompany(ctx context.Context, companyID string) (Subscription, error) {
	const query = `
SELECT id, company_id, plan_id, seats_total, status
FROM subscriptions
WHERE company_id = $1 AND status = 'active'
ORDER BY id DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, companyID))
}

func (r *PGRepo) GetByCompany(ctx context.Context, companyID string) (Subscription, error) {
	const query = `
SELECT id, company_id, plan_id, seats_total, status
FROM subscriptions
WHERE company_id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, companyID))
}

func (r *PGRepo) Update(ctx context.Context, sub Subscription) error {
	const query = `
UPDATE subscriptions
SET seats_total = $1, status = $2
WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, sub.SeatsTotal, sub.Status, sub.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) scanOne(row *sql.Row) (Subscription, error) {
	var sub Subscription
	err := row.Scan(&sub.ID, &sub.CompanyID, &sub.PlanID, &sub.SeatsTotal, &sub.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, err
	}
	return sub, nil
}
