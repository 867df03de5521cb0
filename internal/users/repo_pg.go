package users

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, company_id, email, full_name, role, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.CompanyID,
		user.Email,
		user.FullName,
		user.Role,
		user.IsActive,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, companyID, userID string) (User, error) {
	const query = `
SELECT id, company_id, email, full_name, role, is_active, created_at
FROM users
WHERE id = $1 AND company_id = $2
LIMIT 1`
	return scanUser(r.DB.QueryRowContext(ctx, query, userID, companyID))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, company_id, email, full_name, role, is_active, created_at
FROM users
WHERE email = $1
LIMIT 1`
	return scanUser(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]User, error) {
	const query = `
SELECT id, company_id, email, full_name, role, is_active, created_at
FROM users
WHERE company_id = $1
ORDER BY created_at ASC, id ASC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.CompanyID, &user.Email, &user.FullName, &user.Role, &user.IsActive, &user.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, user)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, user User) error {
	const query = `
UPDATE users
SET email = $1, full_name = $2, role = $3, is_active = $4
WHERE id = $5 AND company_id = $6`
	res, err := r.DB.ExecContext(ctx, query,
		user.Email,
		user.FullName,
		user.Role,
		user.IsActive,
		user.ID,
		user.CompanyID,
	)
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

func (r *PGRepo) CountActive(ctx context.Context, companyID string) (int, error) {
	const query = `
SELECT COUNT(id) FROM users
WHERE company_id = $1 AND is_active = TRUE`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, companyID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanUser(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(&user.ID, &user.CompanyID, &user.Email, &user.FullName, &user.Role, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}
