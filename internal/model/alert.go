package model

import "time"

// Alert types raised by the stock ledger threshold check
const (
	AlertLowStock  = "low_stock"
	AlertOverstock = "overstock"
)

// Alert statuses
const (
	AlertOpen     = "open"
	AlertAssigned = "assigned"
	AlertResolved = "resolved"
)

// Alert flags a product whose stock crossed one of its thresholds
type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Product   Product   `json:"product,omitempty"`
	Type      string    `gorm:"type:varchar(50);not null" json:"type"`
	Status    string    `gorm:"type:varchar(50);not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"` // Assignee
}
