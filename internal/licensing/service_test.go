package licensing_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/McFranco99/ToolHR/internal/licensing"
	"github.com/McFranco99/ToolHR/internal/subscriptions"
	"github.com/McFranco99/ToolHR/internal/users"
)

func newRepoService(t *testing.T) (*licensing.Service, *subscriptions.MemoryRepo, *users.MemoryRepo) {
	t.Helper()
	subs := subscriptions.NewMemoryRepo()
	members := users.NewMemoryRepo()
	svc := licensing.NewRepoService(licensing.NewRepoStore(subs, members))
	return svc, subs, members
}

func addSubscription(t *testing.T, subs *subscriptions.MemoryRepo, companyID string, seats int, status string) {
	t.Helper()
	err := subs.Create(context.Background(), subscriptions.Subscription{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		PlanID:     uuid.NewString(),
		SeatsTotal: seats,
		Status:     status,
	})
	if err != nil {
		t.Fatalf("create subscription: %v", err)
	}
}

func addUser(t *testing.T, members *users.MemoryRepo, companyID string, active bool) {
	t.Helper()
	err := members.Create(context.Background(), users.User{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Email:     uuid.NewString() + "@example.com",
		FullName:  "Test User",
		Role:      users.RoleHRUser,
		IsActive:  active,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func TestSnapshotCountsOnlyActiveUsers(t *testing.T) {
	svc, subs, members := newRepoService(t)
	companyID := uuid.NewString()
	addSubscription(t, subs, companyID, 5, subscriptions.StatusActive)
	addUser(t, members, companyID, true)
	addUser(t, members, companyID, true)
	addUser(t, members, companyID, false)

	usage, err := svc.Snapshot(context.Background(), companyID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if usage.ActiveUsers != 2 || usage.SeatsTotal != 5 || usage.AvailableSeats != 3 {
		t.Fatalf("unexpected usage: %+v", usage)
	}
}

func TestSnapshotNoActiveSubscriptionMeansZeroSeats(t *testing.T) {
	svc, subs, members := newRepoService(t)
	companyID := uuid.NewString()
	addSubscription(t, subs, companyID, 5, subscriptions.StatusCanceled)
	addUser(t, members, companyID, true)

	usage, err := svc.Snapshot(context.Background(), companyID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if usage.SeatsTotal != 0 || usage.ActiveUsers != 1 || usage.AvailableSeats != 0 {
		t.Fatalf("unexpected usage: %+v", usage)
	}
}

func TestCanAddUser(t *testing.T) {
	svc, subs, members := newRepoService(t)
	companyID := uuid.NewString()
	addSubscription(t, subs, companyID, 2, subscriptions.StatusActive)
	addUser(t, members, companyID, true)

	ok, usage, err := svc.CanAddUser(context.Background(), companyID)
	if err != nil {
		t.Fatalf("can add user: %v", err)
	}
	if !ok || usage.AvailableSeats != 1 {
		t.Fatalf("expected a free seat, got ok=%v usage=%+v", ok, usage)
	}

	addUser(t, members, companyID, true)
	ok, usage, err = svc.CanAddUser(context.Background(), companyID)
	if err != nil {
		t.Fatalf("can add user: %v", err)
	}
	if ok || usage.AvailableSeats != 0 {
		t.Fatalf("expected no free seat, got ok=%v usage=%+v", ok, usage)
	}
}
