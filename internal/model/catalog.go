package model

// Category groups products
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Description string `gorm:"type:varchar(255)" json:"description,omitempty"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// Product is a catalog entry. Min/Max thresholds drive low-stock and
// overstock alerting downstream.
type Product struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Designation  string   `gorm:"type:varchar(100);not null" json:"designation" validate:"required"`
	Description  string   `gorm:"type:varchar(255)" json:"description,omitempty"`
	CategoryID   uint     `gorm:"not null;index" json:"category_id" validate:"required"`
	Category     Category `json:"category,omitempty" validate:"-"`
	MinThreshold float64  `gorm:"not null" json:"min_threshold"`
	MaxThreshold float64  `gorm:"not null" json:"max_threshold"`
	RFIDTag      *string  `gorm:"type:varchar(100)" json:"rfid_tag,omitempty"`

	// Dependents are removed together with the product
	Inventories []Inventory       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"inventories,omitempty"`
	Orders      []Order           `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	Alerts      []Alert           `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"alerts,omitempty"`
	Predictions []OrderPrediction `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"predictions,omitempty"`
}

// ProductResponse carries the resolved category name for display
type ProductResponse struct {
	ID           uint    `json:"id"`
	Designation  string  `json:"designation"`
	Description  string  `json:"description,omitempty"`
	CategoryID   uint    `json:"category_id"`
	Category     string  `json:"category"`
	MinThreshold float64 `json:"min_threshold"`
	MaxThreshold float64 `json:"max_threshold"`
	RFIDTag      *string `json:"rfid_tag,omitempty"`
}

// ToResponse converts Product to ProductResponse. The category must be
// preloaded.
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Designation:  p.Designation,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		Category:     p.Category.Name,
		MinThreshold: p.MinThreshold,
		MaxThreshold: p.MaxThreshold,
		RFIDTag:      p.RFIDTag,
	}
}
