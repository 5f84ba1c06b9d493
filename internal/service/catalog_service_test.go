package service

import (
	"errors"
	"testing"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"

	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) CatalogService {
	return NewCatalogService(repository.NewCategoryRepo(db), repository.NewProductRepo(db))
}

func TestCreateProductUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	err := svc.CreateProduct(&model.Product{
		Designation: "Forklift",
		CategoryID:  42,
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound got %v", err)
	}

	// No row may exist after the rejected write
	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no products got %d", count)
	}
}

func TestCreateProductResolvesCategoryName(t *testing.T) {
	db := setupTestDB(t)
	category := seedCategory(t, db, "Machinery")
	svc := newCatalogService(db)

	product := &model.Product{Designation: "Forklift", CategoryID: category.ID, MinThreshold: 1, MaxThreshold: 5}
	if err := svc.CreateProduct(product); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if product.ToResponse().Category != "Machinery" {
		t.Fatalf("expected resolved category name, got %q", product.ToResponse().Category)
	}

	list, err := svc.ListProducts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Category != "Machinery" {
		t.Fatalf("unexpected listing: %+v", list)
	}
}

func TestUpdateProductPartial(t *testing.T) {
	db := setupTestDB(t)
	category := seedCategory(t, db, "Machinery")
	other := seedCategory(t, db, "Spares")
	product := seedProduct(t, db, category.ID, 1, 5)
	svc := newCatalogService(db)

	newName := "Electric pallet jack"
	updated, err := svc.UpdateProduct(product.ID, &UpdateProductRequest{Designation: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Designation != newName {
		t.Fatalf("designation not updated: %q", updated.Designation)
	}
	// Omitted fields keep their prior values
	if updated.CategoryID != category.ID || updated.MinThreshold != 1 || updated.MaxThreshold != 5 {
		t.Fatalf("omitted fields changed: %+v", updated)
	}

	updated, err = svc.UpdateProduct(product.ID, &UpdateProductRequest{CategoryID: &other.ID})
	if err != nil {
		t.Fatalf("category update: %v", err)
	}
	if updated.CategoryID != other.ID || updated.Category.Name != "Spares" {
		t.Fatalf("category not switched: %+v", updated)
	}
	if updated.Designation != newName {
		t.Fatalf("earlier update lost: %q", updated.Designation)
	}
}

func TestUpdateProductUnknownTargets(t *testing.T) {
	db := setupTestDB(t)
	category := seedCategory(t, db, "Machinery")
	product := seedProduct(t, db, category.ID, 1, 5)
	svc := newCatalogService(db)

	if _, err := svc.UpdateProduct(999, &UpdateProductRequest{}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound got %v", err)
	}

	badCategory := uint(999)
	if _, err := svc.UpdateProduct(product.ID, &UpdateProductRequest{CategoryID: &badCategory}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound got %v", err)
	}

	// The failed category switch must not have been committed
	reloaded, err := svc.UpdateProduct(product.ID, &UpdateProductRequest{})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.CategoryID != category.ID {
		t.Fatalf("category changed despite failure: %d", reloaded.CategoryID)
	}
}

func TestDeleteProductCascades(t *testing.T) {
	db := setupTestDB(t)
	category := seedCategory(t, db, "Machinery")
	product := seedProduct(t, db, category.ID, 20, 100)
	zone := seedZone(t, db, "Zone A")
	svc := newCatalogService(db)

	// Leave dependents behind: a ledger row and a threshold alert
	stock := newStockService(db)
	if _, err := stock.Upsert(product.ID, zone.ID, 5); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := svc.DeleteProduct(product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var productCount, invCount, alertCount int64
	db.Model(&model.Product{}).Count(&productCount)
	db.Model(&model.Inventory{}).Count(&invCount)
	db.Model(&model.Alert{}).Count(&alertCount)
	if productCount != 0 || invCount != 0 || alertCount != 0 {
		t.Fatalf("dependents survived delete: products=%d inventory=%d alerts=%d", productCount, invCount, alertCount)
	}

	if err := svc.DeleteProduct(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on second delete got %v", err)
	}
}

func TestDuplicateCategoryNamesAllowed(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	if err := svc.CreateCategory(&model.Category{Name: "Machinery"}); err != nil {
		t.Fatalf("first category: %v", err)
	}
	if err := svc.CreateCategory(&model.Category{Name: "Machinery"}); err != nil {
		t.Fatalf("duplicate category name should be allowed: %v", err)
	}

	categories, err := svc.ListCategories()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories got %d", len(categories))
	}
}
