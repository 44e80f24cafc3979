package stores

import (
	"testing"
	"time"

	"carelink/internal/models/db_models"
)

func TestTrackingUpdatesRefreshLastUpdate(t *testing.T) {
	s := NewTrackingStore(nil)
	s.Seed()

	entry := s.Start("order-1")
	if entry.Status != db_models.TrackingIdle {
		t.Fatalf("start status = %s, want idle", entry.Status)
	}

	s.UpdateStatus("order-1", db_models.TrackingEnRoute)
	got, _ := s.Get("order-1")
	if got.Status != db_models.TrackingEnRoute {
		t.Fatalf("status = %s, want en_route", got.Status)
	}
	if got.LastUpdate.Before(entry.LastUpdate) {
		t.Fatal("LastUpdate went backward")
	}

	s.UpdateLocation("order-1", db_models.GeoPoint{Latitude: 1.3, Longitude: 103.8, Timestamp: time.Now()})
	got, _ = s.Get("order-1")
	if got.Location == nil || got.Location.Latitude != 1.3 {
		t.Fatal("location not recorded")
	}
}

func TestTrackingStatusIsNotALifecycle(t *testing.T) {
	s := NewTrackingStore(nil)
	s.Seed()
	s.Start("order-2")

	// Any order of valid statuses is accepted, including backward moves.
	for _, status := range []db_models.TrackingStatus{
		db_models.TrackingCompleted,
		db_models.TrackingSearching,
		db_models.TrackingArrived,
	} {
		s.UpdateStatus("order-2", status)
		got, _ := s.Get("order-2")
		if got.Status != status {
			t.Fatalf("status %s rejected", status)
		}
	}

	// Unknown statuses are not.
	s.UpdateStatus("order-2", db_models.TrackingStatus("teleported"))
	got, _ := s.Get("order-2")
	if got.Status != db_models.TrackingArrived {
		t.Fatal("invalid status accepted")
	}
}

func TestTrackingAbsentOrderIsNoOp(t *testing.T) {
	s := NewTrackingStore(nil)
	s.Seed()

	s.UpdateStatus("missing", db_models.TrackingActive)
	s.UpdateLocation("missing", db_models.GeoPoint{Latitude: 1, Longitude: 2})
	s.AssignPal("missing", "pal-1")

	if _, ok := s.Get("missing"); ok {
		t.Fatal("mutation created a tracking entry")
	}
}
