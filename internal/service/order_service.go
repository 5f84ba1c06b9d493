package service

import (
	"errors"
	"fmt"
	"time"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
	"go-warehouse-stock/pkg/validator"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrOrderNotPending    = errors.New("order is not pending")
)

type OrderService interface {
	CreateOrder(req *model.Order, creatorID uint) error
	ListOrders() ([]model.Order, error)
	MarkDelivered(id uint) (*model.Order, error)
	MarkReturned(id uint) (*model.Order, error)
	CreatePrediction(req *model.OrderPrediction) error
	ListPredictions() ([]model.OrderPrediction, error)
	GenerateOrder(predictionID, creatorID uint) (*model.Order, error)
}

type orderService struct {
	orderRepo      repository.OrderRepository
	predictionRepo repository.PredictionRepository
	productRepo    repository.ProductRepository
	userRepo       repository.UserRepository
}

func NewOrderService(
	oRepo repository.OrderRepository,
	predRepo repository.PredictionRepository,
	pRepo repository.ProductRepository,
	uRepo repository.UserRepository,
) OrderService {
	return &orderService{
		orderRepo:      oRepo,
		predictionRepo: predRepo,
		productRepo:    pRepo,
		userRepo:       uRepo,
	}
}

func (s *orderService) CreateOrder(req *model.Order, creatorID uint) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		return ErrProductNotFound
	}
	if _, err := s.userRepo.FindByID(creatorID); err != nil {
		return ErrUserNotFound
	}

	req.UserID = creatorID
	req.Status = model.OrderPending
	req.CreatedAt = time.Now().UTC()
	return s.orderRepo.Create(req)
}

func (s *orderService) ListOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) MarkDelivered(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != model.OrderPending {
		return nil, ErrOrderNotPending
	}

	now := time.Now().UTC()
	order.Status = model.OrderDelivered
	order.DeliveredAt = &now
	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) MarkReturned(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	// Only delivered goods can come back
	if order.Status != model.OrderDelivered {
		return nil, ErrOrderNotPending
	}

	now := time.Now().UTC()
	order.Status = model.OrderReturned
	order.ReturnedAt = &now
	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) CreatePrediction(req *model.OrderPrediction) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		return ErrProductNotFound
	}

	req.CreatedAt = time.Now().UTC()
	return s.predictionRepo.Create(req)
}

func (s *orderService) ListPredictions() ([]model.OrderPrediction, error) {
	return s.predictionRepo.FindAll()
}

// GenerateOrder creates a replenishment order from a prediction and links the
// two through the prediction_orders association.
func (s *orderService) GenerateOrder(predictionID, creatorID uint) (*model.Order, error) {
	prediction, err := s.predictionRepo.FindByID(predictionID)
	if err != nil {
		return nil, ErrPredictionNotFound
	}
	if _, err := s.userRepo.FindByID(creatorID); err != nil {
		return nil, ErrUserNotFound
	}

	order := &model.Order{
		ProductID: prediction.ProductID,
		Quantity:  prediction.PredictedQuantity,
		Status:    model.OrderPending,
		CreatedAt: time.Now().UTC(),
		UserID:    creatorID,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	if err := s.predictionRepo.LinkOrder(prediction, order); err != nil {
		return nil, err
	}
	return order, nil
}
