package model

import "time"

// Order statuses
const (
	OrderPending   = "pending"
	OrderDelivered = "delivered"
	OrderReturned  = "returned"
)

// Order is a replenishment order for a product
type Order struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProductID   uint       `gorm:"not null;index" json:"product_id" validate:"required"`
	Product     Product    `json:"product,omitempty" validate:"-"`
	Quantity    float64    `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Status      string     `gorm:"type:varchar(50);not null" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	ReturnedAt  *time.Time `json:"returned_at,omitempty"`
	UserID      uint       `gorm:"not null;index" json:"user_id"` // Creator
}

// PredictionPeriod is the horizon of a demand prediction
type PredictionPeriod string

const (
	PeriodDaily   PredictionPeriod = "daily"
	PeriodWeekly  PredictionPeriod = "weekly"
	PeriodMonthly PredictionPeriod = "monthly"
)

// OrderPrediction is a forecast of replenishment demand for a product over a
// period. Orders generated from a prediction are linked through the
// prediction_orders join table.
type OrderPrediction struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	ProductID         uint             `gorm:"not null;index" json:"product_id" validate:"required"`
	PredictedQuantity float64          `gorm:"not null" json:"predicted_quantity" validate:"required,gt=0"`
	PredictionPeriod  PredictionPeriod `gorm:"type:varchar(50);not null" json:"prediction_period" validate:"required,oneof=daily weekly monthly"`
	CreatedAt         time.Time        `json:"created_at"`
	StartPrediction   time.Time        `gorm:"not null" json:"start_prediction" validate:"required"`
	FinishPrediction  time.Time        `gorm:"not null" json:"finish_prediction" validate:"required"`

	Orders []Order `gorm:"many2many:prediction_orders" json:"orders,omitempty"`
}
