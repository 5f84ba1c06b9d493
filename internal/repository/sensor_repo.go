package repository

import (
	"go-warehouse-stock/internal/model"

	"gorm.io/gorm"
)

type SensorRepository interface {
	Create(sensor *model.Sensor) error
	FindAll() ([]model.Sensor, error)
	FindByID(id uint) (*model.Sensor, error)
	Delete(id uint) error
	AppendReading(reading *model.SensorData) error
	FindReadings(sensorID uint) ([]model.SensorData, error)
}

type sensorRepo struct {
	db *gorm.DB
}

func NewSensorRepo(db *gorm.DB) SensorRepository {
	return &sensorRepo{db}
}

func (r *sensorRepo) Create(sensor *model.Sensor) error {
	return r.db.Create(sensor).Error
}

func (r *sensorRepo) FindAll() ([]model.Sensor, error) {
	var sensors []model.Sensor
	err := r.db.Find(&sensors).Error
	return sensors, err
}

func (r *sensorRepo) FindByID(id uint) (*model.Sensor, error) {
	var sensor model.Sensor
	if err := r.db.First(&sensor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sensor, nil
}

// Delete removes the sensor together with every reading it owns.
func (r *sensorRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sensor_id = ?", id).Delete(&model.SensorData{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Sensor{}, "id = ?", id).Error
	})
}

// AppendReading stores the reading and refreshes the sensor's last_reading
// in one transaction.
func (r *sensorRepo) AppendReading(reading *model.SensorData) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reading).Error; err != nil {
			return err
		}
		return tx.Model(&model.Sensor{}).
			Where("id = ?", reading.SensorID).
			Update("last_reading", reading.SavedAt).Error
	})
}

func (r *sensorRepo) FindReadings(sensorID uint) ([]model.SensorData, error) {
	var readings []model.SensorData
	err := r.db.Where("sensor_id = ?", sensorID).Order("saved_at").Find(&readings).Error
	return readings, err
}
