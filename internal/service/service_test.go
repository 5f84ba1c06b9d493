package service

import (
	"testing"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
	"go-warehouse-stock/internal/ws"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Zone{},
		&model.Inventory{},
		&model.Sensor{},
		&model.SensorData{},
		&model.Alert{},
		&model.Order{},
		&model.OrderPrediction{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, min, max float64) *model.Product {
	t.Helper()
	product := &model.Product{
		Designation:  "Pallet jack",
		CategoryID:   categoryID,
		MinThreshold: min,
		MaxThreshold: max,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func seedZone(t *testing.T, db *gorm.DB, name string) *model.Zone {
	t.Helper()
	zone := &model.Zone{Name: name}
	if err := db.Create(zone).Error; err != nil {
		t.Fatalf("seed zone: %v", err)
	}
	return zone
}

func seedUser(t *testing.T, db *gorm.DB, username string, role model.Role) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@test", Role: role}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func newStockService(db *gorm.DB) StockService {
	return NewStockService(
		repository.NewProductRepo(db),
		repository.NewZoneRepo(db),
		repository.NewInventoryRepo(db),
		repository.NewAlertRepo(db),
		db,
		newTestHub(),
	)
}
