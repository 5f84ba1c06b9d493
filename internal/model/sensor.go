package model

import "time"

// Sensor is a telemetry device installed in a zone
type Sensor struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Type        string     `gorm:"type:varchar(100);not null" json:"type" validate:"required"`
	ZoneID      uint       `gorm:"not null;index" json:"zone_id" validate:"required"`
	Zone        Zone       `json:"zone,omitempty" validate:"-"`
	Status      string     `gorm:"type:varchar(50);not null" json:"status" validate:"required"`
	LastReading *time.Time `json:"last_reading,omitempty"`

	// A sensor exclusively owns its readings
	Data []SensorData `gorm:"foreignKey:SensorID;constraint:OnDelete:CASCADE" json:"data,omitempty"`
}

// SensorData is one reading reported by a sensor. The payload is opaque.
type SensorData struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	SensorID uint      `gorm:"not null;index" json:"sensor_id" validate:"required"`
	Value    string    `gorm:"type:varchar(255);not null" json:"value" validate:"required"`
	SavedAt  time.Time `json:"saved_at"`
}

// TableName specifies the table name for GORM
func (SensorData) TableName() string {
	return "sensor_data"
}
