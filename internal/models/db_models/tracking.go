package db_models

import "time"

// TrackingStatus is advisory: updates are accepted in any order, unlike the
// gig lifecycle.
type TrackingStatus string

const (
	TrackingIdle      TrackingStatus = "idle"
	TrackingSearching TrackingStatus = "searching"
	TrackingMatched   TrackingStatus = "matched"
	TrackingEnRoute   TrackingStatus = "en_route"
	TrackingArrived   TrackingStatus = "arrived"
	TrackingActive    TrackingStatus = "active"
	TrackingCompleted TrackingStatus = "completed"
)

func (s TrackingStatus) Valid() bool {
	switch s {
	case TrackingIdle, TrackingSearching, TrackingMatched, TrackingEnRoute,
		TrackingArrived, TrackingActive, TrackingCompleted:
		return true
	}
	return false
}

type GeoPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type OrderTracking struct {
	OrderID    string         `json:"order_id"`
	PalID      string         `json:"pal_id,omitempty"`
	Location   *GeoPoint      `json:"location,omitempty"`
	Status     TrackingStatus `json:"status"`
	LastUpdate time.Time      `json:"last_update"`
}
