package repository

import (
	"go-warehouse-stock/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindAll() ([]model.Order, error)
	FindByID(id uint) (*model.Order, error)
	Save(order *model.Order) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) Save(order *model.Order) error {
	return r.db.Save(order).Error
}

type PredictionRepository interface {
	Create(prediction *model.OrderPrediction) error
	FindAll() ([]model.OrderPrediction, error)
	FindByID(id uint) (*model.OrderPrediction, error)
	LinkOrder(prediction *model.OrderPrediction, order *model.Order) error
}

type predictionRepo struct {
	db *gorm.DB
}

func NewPredictionRepo(db *gorm.DB) PredictionRepository {
	return &predictionRepo{db}
}

func (r *predictionRepo) Create(prediction *model.OrderPrediction) error {
	return r.db.Create(prediction).Error
}

func (r *predictionRepo) FindAll() ([]model.OrderPrediction, error) {
	var predictions []model.OrderPrediction
	err := r.db.Preload("Orders").Order("created_at DESC").Find(&predictions).Error
	return predictions, err
}

func (r *predictionRepo) FindByID(id uint) (*model.OrderPrediction, error) {
	var prediction model.OrderPrediction
	if err := r.db.Preload("Orders").First(&prediction, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &prediction, nil
}

// LinkOrder records that the order was generated from the prediction.
func (r *predictionRepo) LinkOrder(prediction *model.OrderPrediction, order *model.Order) error {
	return r.db.Model(prediction).Association("Orders").Append(order)
}
