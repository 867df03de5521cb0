package plans

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	plan := Plan{ID: "plan-1", Name: "Base", IncludedSeats: 3}
	mock.ExpectExec("INSERT INTO plans").
		WithArgs(plan.ID, plan.Name, plan.IncludedSeats).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), plan); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByNameNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, name, included_seats").
		WithArgs("Missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "included_seats"}))

	_, err := repo.GetByName(context.Background(), "Missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoList(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, name, included_seats").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "included_seats"}).
			AddRow("plan-1", "Base", 3).
			AddRow("plan-2", "Team", 10))

	out, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Base" || out[1].IncludedSeats != 10 {
		t.Fatalf("unexpected plans: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
