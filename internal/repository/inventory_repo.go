package repository

import (
	"time"

	"go-warehouse-stock/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository interface {
	UpdateQuantity(tx *gorm.DB, productID, zoneID uint, quantity int, at time.Time) (int64, error)
	Insert(tx *gorm.DB, inv *model.Inventory) error
	FindByKey(productID, zoneID uint) (*model.Inventory, error)
	ListRecords() ([]model.InventoryRecord, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

// UpdateQuantity runs a single conditional UPDATE against the composite key
// and reports how many rows it touched. It accepts *gorm.DB so the caller can
// run it inside a transaction.
func (r *inventoryRepo) UpdateQuantity(tx *gorm.DB, productID, zoneID uint, quantity int, at time.Time) (int64, error) {
	res := tx.Model(&model.Inventory{}).
		Where("product_id = ? AND zone_id = ?", productID, zoneID).
		Updates(map[string]interface{}{
			"quantity":       quantity,
			"last_update_at": at,
		})
	return res.RowsAffected, res.Error
}

// Insert adds the ledger row, falling back to an atomic conflict-update when
// a concurrent caller created the row first. Using ON CONFLICT keeps the
// surrounding transaction healthy on engines that abort it after a
// unique-violation error.
func (r *inventoryRepo) Insert(tx *gorm.DB, inv *model.Inventory) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "zone_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "last_update_at"}),
	}).Create(inv).Error
}

func (r *inventoryRepo) FindByKey(productID, zoneID uint) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.Where("product_id = ? AND zone_id = ?", productID, zoneID).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListRecords returns the full ledger joined with product designations and
// zone names for display.
func (r *inventoryRepo) ListRecords() ([]model.InventoryRecord, error) {
	var records []model.InventoryRecord
	err := r.db.Model(&model.Inventory{}).
		Select("inventory.product_id, products.designation AS product_name, inventory.zone_id, zones.name AS zone_name, inventory.quantity, inventory.last_update_at").
		Joins("JOIN products ON products.id = inventory.product_id").
		Joins("JOIN zones ON zones.id = inventory.zone_id").
		Order("inventory.product_id, inventory.zone_id").
		Scan(&records).Error
	return records, err
}
