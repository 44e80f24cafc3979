package services

import (
	"carelink/internal/models/db_models"
	"carelink/internal/stores"
	"carelink/pkg/utils"
)

type TrackingServiceInterface interface {
	Start(orderID string) db_models.OrderTracking
	Get(orderID string) (db_models.OrderTracking, error)
	UpdateStatus(orderID string, status string) (db_models.OrderTracking, error)
	UpdateLocation(orderID string, point db_models.GeoPoint) (db_models.OrderTracking, error)
	AssignPal(orderID string, palID string) (db_models.OrderTracking, error)
}

type TrackingService struct {
	tracking *stores.TrackingStore
}

func NewTrackingService(tracking *stores.TrackingStore) TrackingServiceInterface {
	return &TrackingService{tracking: tracking}
}

func (t *TrackingService) Start(orderID string) db_models.OrderTracking {
	return t.tracking.Start(orderID)
}

func (t *TrackingService) Get(orderID string) (db_models.OrderTracking, error) {
	entry, ok := t.tracking.Get(orderID)
	if !ok {
		return db_models.OrderTracking{}, utils.ErrTrackingNotFound
	}
	return entry, nil
}

func (t *TrackingService) UpdateStatus(orderID string, status string) (db_models.OrderTracking, error) {
	if _, ok := t.tracking.Get(orderID); !ok {
		return db_models.OrderTracking{}, utils.ErrTrackingNotFound
	}
	t.tracking.UpdateStatus(orderID, db_models.TrackingStatus(status))
	entry, _ := t.tracking.Get(orderID)
	return entry, nil
}

func (t *TrackingService) UpdateLocation(orderID string, point db_models.GeoPoint) (db_models.OrderTracking, error) {
	if _, ok := t.tracking.Get(orderID); !ok {
		return db_models.OrderTracking{}, utils.ErrTrackingNotFound
	}
	t.tracking.UpdateLocation(orderID, point)
	entry, _ := t.tracking.Get(orderID)
	return entry, nil
}

func (t *TrackingService) AssignPal(orderID string, palID string) (db_models.OrderTracking, error) {
	if _, ok := t.tracking.Get(orderID); !ok {
		return db_models.OrderTracking{}, utils.ErrTrackingNotFound
	}
	t.tracking.AssignPal(orderID, palID)
	entry, _ := t.tracking.Get(orderID)
	return entry, nil
}
