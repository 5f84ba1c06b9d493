package model

// Zone is a physical storage area in the warehouse
type Zone struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Description string `gorm:"type:varchar(255)" json:"description,omitempty"`

	Inventories []Inventory `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE" json:"inventories,omitempty"`
	Sensors     []Sensor    `gorm:"foreignKey:ZoneID" json:"sensors,omitempty"`
}
