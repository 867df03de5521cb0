package licensing

import (
	"context"
	"database/sql"
	"errors"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed licensing store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

// Snapshot reads seats and active users in one transaction, locking the
// subscription row so the pair is consistent.
func (s *pgStore) Snapshot(ctx context.Context, companyID string) (Usage, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Usage{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	seats := 0
	row := tx.QueryRowContext(ctx, `
SELECT seats_total FROM subscriptions
WHERE company_id = $1 AND status = 'active'
ORDER BY id DESC
LIMIT 1
FOR UPDATE`, companyID)
	if err = row.Scan(&seats); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return Usage{}, err
		}
		err = nil
		seats = 0
	}

	active := 0
	row = tx.QueryRowContext(ctx, `
SELECT COUNT(id) FROM users
WHERE company_id = $1 AND is_active = TRUE`, companyID)
	if err = row.Scan(&active); err != nil {
		return Usage{}, err
	}

	if err = tx.Commit(); err != nil {
		return Usage{}, err
	}

	available := seats - active
	if available < 0 {
		available = 0
	}
	return Usage{
		CompanyID:      companyID,
		ActiveUsers:    active,
		SeatsTotal:     seats,
		AvailableSeats: available,
	}, nil
}
