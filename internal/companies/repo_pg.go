package companies

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, company Company) error {
	const query = `
INSERT INTO companies (id, name, vat_number, is_active, created_at)
VALUES ($1, $2, $3, $4, now())`
	_, err := r.DB.ExecContext(ctx, query,
		company.ID,
		company.Name,
		nullableString(company.VATNumber),
		company.IsActive,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, companyID string) (Company, error) {
	const query = `
SELECT id, name, vat_number, is_active, created_at
FROM companies
WHERE id = $1
LIMIT 1`
	return scanCompany(r.DB.QueryRowContext(ctx, query, companyID))
}

func (r *PGRepo) GetByName(ctx context.Context, name string) (Company, error) {
	const query = `
SELECT id, name, vat_number, is_active, created_at
FROM companies
WHERE name = $1
LIMIT 1`
	return scanCompany(r.DB.QueryRowContext(ctx, query, name))
}

func (r *PGRepo) List(ctx context.Context, q string, limit, offset int) ([]Company, error) {
	const query = `
SELECT id, name, vat_number, is_active, created_at
FROM companies
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
ORDER BY created_at ASC, id ASC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		var company Company
		var vat sql.NullString
		if err := rows.Scan(&company.ID, &company.Name, &vat, &company.IsActive, &company.CreatedAt); err != nil {
			return nil, err
		}
		if vat.Valid {
			company.VATNumber = vat.String
		}
		out = append(out, company)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, company Company) error {
	const query = `
UPDATE companies
SET name = $1, vat_number = $2, is_active = $3
WHERE id = $4`
	res, err := r.DB.ExecContext(ctx, query,
		company.Name,
		nullableString(company.VATNumber),
		company.IsActive,
		company.ID,
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

func scanCompany(row *sql.Row) (Company, error) {
	var company Company
	var vat sql.NullString
	err := row.Scan(&company.ID, &company.Name, &vat, &company.IsActive, &company.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Company{}, ErrNotFound
		}
		return Company{}, err
	}
	if vat.Valid {
		company.VATNumber = vat.String
	}
	return company, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
