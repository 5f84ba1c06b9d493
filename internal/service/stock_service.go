package service

import (
	"errors"
	"time"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
	"go-warehouse-stock/internal/ws"

	"gorm.io/gorm"
)

var ErrZoneNotFound = errors.New("zone not found")

type StockService interface {
	Upsert(productID, zoneID uint, quantity int) (*UpsertResult, error)
	List() ([]model.InventoryRecord, error)
}

// UpsertResult distinguishes the two upsert outcomes for the caller.
type UpsertResult struct {
	Record  model.Inventory `json:"inventory"`
	Created bool            `json:"created"`
}

type stockService struct {
	productRepo repository.ProductRepository
	zoneRepo    repository.ZoneRepository
	invRepo     repository.InventoryRepository
	alertRepo   repository.AlertRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewStockService(
	pRepo repository.ProductRepository,
	zRepo repository.ZoneRepository,
	iRepo repository.InventoryRepository,
	aRepo repository.AlertRepository,
	db *gorm.DB,
	hub *ws.Hub,
) StockService {
	return &stockService{
		productRepo: pRepo,
		zoneRepo:    zRepo,
		invRepo:     iRepo,
		alertRepo:   aRepo,
		db:          db,
		wsHub:       hub,
	}
}

// Upsert sets the absolute stock quantity for the (product, zone) pair,
// inserting the ledger row on first observation and overwriting it in place
// afterwards. Both foreign keys must resolve before anything is written.
func (s *stockService) Upsert(productID, zoneID uint, quantity int) (*UpsertResult, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if _, err := s.zoneRepo.FindByID(zoneID); err != nil {
		return nil, ErrZoneNotFound
	}

	now := time.Now().UTC()
	result := &UpsertResult{
		Record: model.Inventory{
			ProductID:    productID,
			ZoneID:       zoneID,
			Quantity:     quantity,
			LastUpdateAt: now,
		},
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		rows, err := s.invRepo.UpdateQuantity(tx, productID, zoneID, quantity, now)
		if err != nil {
			return err
		}
		if rows > 0 {
			return nil
		}

		// No row for the pair yet. The insert resolves a racing creator
		// through its conflict clause, so the transaction never aborts on a
		// duplicate key.
		if err := s.invRepo.Insert(tx, &result.Record); err != nil {
			return err
		}

		result.Created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.evaluateThresholds(product, quantity)

	s.wsHub.Publish("stock_update", map[string]interface{}{
		"product_id": productID,
		"zone_id":    zoneID,
		"quantity":   quantity,
		"created":    result.Created,
	})

	return result, nil
}

func (s *stockService) List() ([]model.InventoryRecord, error) {
	return s.invRepo.ListRecords()
}

// evaluateThresholds raises a low_stock or overstock alert when the new
// quantity crosses the product's bounds. At most one unresolved alert per
// product and type is kept.
func (s *stockService) evaluateThresholds(product *model.Product, quantity int) {
	alertType := ""
	switch {
	case float64(quantity) < product.MinThreshold:
		alertType = model.AlertLowStock
	case float64(quantity) > product.MaxThreshold:
		alertType = model.AlertOverstock
	default:
		return
	}

	exists, err := s.alertRepo.HasUnresolved(product.ID, alertType)
	if err != nil || exists {
		return
	}

	alert := &model.Alert{
		ProductID: product.ID,
		Type:      alertType,
		Status:    model.AlertOpen,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.alertRepo.Create(alert); err != nil {
		return
	}

	s.wsHub.Publish("alert_raised", alert)
}
