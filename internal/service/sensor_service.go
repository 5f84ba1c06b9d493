package service

import (
	"errors"
	"fmt"
	"time"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
	"go-warehouse-stock/pkg/validator"
)

var ErrSensorNotFound = errors.New("sensor not found")

type SensorService interface {
	CreateSensor(req *model.Sensor) error
	ListSensors() ([]model.Sensor, error)
	DeleteSensor(id uint) error
	RecordReading(sensorID uint, value string) (*model.SensorData, error)
	ListReadings(sensorID uint) ([]model.SensorData, error)
}

type sensorService struct {
	sensorRepo repository.SensorRepository
	zoneRepo   repository.ZoneRepository
}

func NewSensorService(sRepo repository.SensorRepository, zRepo repository.ZoneRepository) SensorService {
	return &sensorService{
		sensorRepo: sRepo,
		zoneRepo:   zRepo,
	}
}

func (s *sensorService) CreateSensor(req *model.Sensor) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if _, err := s.zoneRepo.FindByID(req.ZoneID); err != nil {
		return ErrZoneNotFound
	}

	return s.sensorRepo.Create(req)
}

func (s *sensorService) ListSensors() ([]model.Sensor, error) {
	return s.sensorRepo.FindAll()
}

// DeleteSensor removes the sensor and cascades to its readings.
func (s *sensorService) DeleteSensor(id uint) error {
	if _, err := s.sensorRepo.FindByID(id); err != nil {
		return ErrSensorNotFound
	}
	return s.sensorRepo.Delete(id)
}

func (s *sensorService) RecordReading(sensorID uint, value string) (*model.SensorData, error) {
	if value == "" {
		return nil, errors.New("reading value is required")
	}

	if _, err := s.sensorRepo.FindByID(sensorID); err != nil {
		return nil, ErrSensorNotFound
	}

	reading := &model.SensorData{
		SensorID: sensorID,
		Value:    value,
		SavedAt:  time.Now().UTC(),
	}
	if err := s.sensorRepo.AppendReading(reading); err != nil {
		return nil, err
	}
	return reading, nil
}

func (s *sensorService) ListReadings(sensorID uint) ([]model.SensorData, error) {
	if _, err := s.sensorRepo.FindByID(sensorID); err != nil {
		return nil, ErrSensorNotFound
	}
	return s.sensorRepo.FindReadings(sensorID)
}
