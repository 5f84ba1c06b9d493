package service

import (
	"errors"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
)

var ErrAlertNotFound = errors.New("alert not found")

type AlertService interface {
	ListAlerts() ([]model.Alert, error)
	AssignAlert(alertID, userID uint) (*model.Alert, error)
	ResolveAlert(alertID uint) (*model.Alert, error)
}

type alertService struct {
	alertRepo repository.AlertRepository
	userRepo  repository.UserRepository
}

func NewAlertService(aRepo repository.AlertRepository, uRepo repository.UserRepository) AlertService {
	return &alertService{
		alertRepo: aRepo,
		userRepo:  uRepo,
	}
}

func (s *alertService) ListAlerts() ([]model.Alert, error) {
	return s.alertRepo.FindAll()
}

func (s *alertService) AssignAlert(alertID, userID uint) (*model.Alert, error) {
	alert, err := s.alertRepo.FindByID(alertID)
	if err != nil {
		return nil, ErrAlertNotFound
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, ErrUserNotFound
	}

	alert.UserID = &userID
	alert.Status = model.AlertAssigned
	if err := s.alertRepo.Save(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (s *alertService) ResolveAlert(alertID uint) (*model.Alert, error) {
	alert, err := s.alertRepo.FindByID(alertID)
	if err != nil {
		return nil, ErrAlertNotFound
	}

	alert.Status = model.AlertResolved
	if err := s.alertRepo.Save(alert); err != nil {
		return nil, err
	}
	return alert, nil
}
