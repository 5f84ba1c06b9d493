package service

import (
	"errors"
	"testing"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
)

func TestAlertAssignAndResolve(t *testing.T) {
	db := setupTestDB(t)
	category := seedCategory(t, db, "Machinery")
	product := seedProduct(t, db, category.ID, 20, 100)
	zone := seedZone(t, db, "Zone A")
	user := seedUser(t, db, "erin", model.RoleUser)

	// Breach the minimum threshold to produce an alert
	if _, err := newStockService(db).Upsert(product.ID, zone.ID, 1); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	svc := NewAlertService(repository.NewAlertRepo(db), repository.NewUserRepo(db))
	alerts, err := svc.ListAlerts()
	if err != nil || len(alerts) != 1 {
		t.Fatalf("expected 1 alert got %d (%v)", len(alerts), err)
	}

	assigned, err := svc.AssignAlert(alerts[0].ID, user.ID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if assigned.Status != model.AlertAssigned || assigned.UserID == nil || *assigned.UserID != user.ID {
		t.Fatalf("unexpected assigned alert: %+v", assigned)
	}

	if _, err := svc.AssignAlert(alerts[0].ID, 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound got %v", err)
	}

	resolved, err := svc.ResolveAlert(alerts[0].ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Status != model.AlertResolved {
		t.Fatalf("unexpected resolved alert: %+v", resolved)
	}

	if _, err := svc.ResolveAlert(999); !errors.Is(err, ErrAlertNotFound) {
		t.Fatalf("expected ErrAlertNotFound got %v", err)
	}
}
