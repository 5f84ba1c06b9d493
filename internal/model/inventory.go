package model

import "time"

// Inventory is the stock ledger row for one product in one zone. The
// composite primary key guarantees at most one row per (product, zone) pair.
type Inventory struct {
	ProductID    uint      `gorm:"primaryKey;autoIncrement:false" json:"product_id" validate:"required"`
	ZoneID       uint      `gorm:"primaryKey;autoIncrement:false" json:"zone_id" validate:"required"`
	Quantity     int       `gorm:"not null;default:0" json:"quantity"`
	LastUpdateAt time.Time `json:"last_update_at"`

	Product Product `json:"product,omitempty" validate:"-"`
	Zone    Zone    `json:"zone,omitempty" validate:"-"`
}

// TableName keeps the singular table name of the original schema
func (Inventory) TableName() string {
	return "inventory"
}

// InventoryRecord is the joined row returned by the listing endpoint
type InventoryRecord struct {
	ProductID    uint      `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ZoneID       uint      `json:"zone_id"`
	ZoneName     string    `json:"zone_name"`
	Quantity     int       `json:"quantity"`
	LastUpdateAt time.Time `json:"last_update_at"`
}
