package repository

import (
	"go-warehouse-stock/internal/model"

	"gorm.io/gorm"
)

type ZoneRepository interface {
	Create(zone *model.Zone) error
	FindAll() ([]model.Zone, error)
	FindByID(id uint) (*model.Zone, error)
}

type zoneRepo struct {
	db *gorm.DB
}

func NewZoneRepo(db *gorm.DB) ZoneRepository {
	return &zoneRepo{db}
}

func (r *zoneRepo) Create(zone *model.Zone) error {
	return r.db.Create(zone).Error
}

func (r *zoneRepo) FindAll() ([]model.Zone, error) {
	var zones []model.Zone
	err := r.db.Find(&zones).Error
	return zones, err
}

func (r *zoneRepo) FindByID(id uint) (*model.Zone, error) {
	var zone model.Zone
	if err := r.db.First(&zone, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}
