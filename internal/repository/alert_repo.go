package repository

import (
	"go-warehouse-stock/internal/model"

	"gorm.io/gorm"
)

type AlertRepository interface {
	Create(alert *model.Alert) error
	FindAll() ([]model.Alert, error)
	FindByID(id uint) (*model.Alert, error)
	Save(alert *model.Alert) error
	HasUnresolved(productID uint, alertType string) (bool, error)
}

type alertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepository {
	return &alertRepo{db}
}

func (r *alertRepo) Create(alert *model.Alert) error {
	return r.db.Create(alert).Error
}

func (r *alertRepo) FindAll() ([]model.Alert, error) {
	var alerts []model.Alert
	err := r.db.Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *alertRepo) FindByID(id uint) (*model.Alert, error) {
	var alert model.Alert
	if err := r.db.First(&alert, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepo) Save(alert *model.Alert) error {
	return r.db.Save(alert).Error
}

// HasUnresolved reports whether an open or assigned alert of the given type
// already exists for the product. Used to keep repeated threshold breaches
// from piling up duplicates.
func (r *alertRepo) HasUnresolved(productID uint, alertType string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Alert{}).
		Where("product_id = ? AND type = ? AND status <> ?", productID, alertType, model.AlertResolved).
		Count(&count).Error
	return count > 0, err
}
