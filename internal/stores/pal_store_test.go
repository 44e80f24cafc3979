package stores

import (
	"reflect"
	"sort"
	"testing"
)

func TestBookThenReleaseIsNetNoOp(t *testing.T) {
	s := NewPalStore(nil)
	s.Seed()

	before, _ := s.Get("pal-1")

	s.UpdateAvailability("pal-1", "2026-08-30", "09:00-11:00")
	s.RestoreAvailability("pal-1", "2026-08-30", "09:00-11:00")

	after, _ := s.Get("pal-1")
	if !reflect.DeepEqual(before.Availability, after.Availability) {
		t.Fatalf("availability changed: %v -> %v", before.Availability, after.Availability)
	}
}

func TestReleaseThenBookIsNetNoOp(t *testing.T) {
	s := NewPalStore(nil)
	s.Seed()

	before, _ := s.Get("pal-2")

	s.RestoreAvailability("pal-2", "2026-09-01", "08:00-10:00")
	s.UpdateAvailability("pal-2", "2026-09-01", "08:00-10:00")

	after, _ := s.Get("pal-2")
	if !reflect.DeepEqual(before.Availability, after.Availability) {
		t.Fatalf("availability changed: %v -> %v", before.Availability, after.Availability)
	}
}

func TestUpdateAvailabilityDropsEmptyDate(t *testing.T) {
	s := NewPalStore(nil)
	s.Seed()

	// pal-2 has a single slot on 2026-08-30.
	s.UpdateAvailability("pal-2", "2026-08-30", "13:00-15:00")

	pal, _ := s.Get("pal-2")
	for _, a := range pal.Availability {
		if a.Date == "2026-08-30" {
			t.Fatal("emptied date entry was not dropped")
		}
	}
}

func TestRestoreAvailabilityKeepsOrderAndDedupes(t *testing.T) {
	s := NewPalStore(nil)
	s.Seed()

	s.RestoreAvailability("pal-1", "2026-08-29", "07:00-09:00")
	s.RestoreAvailability("pal-1", "2026-08-30", "08:00-09:00")
	s.RestoreAvailability("pal-1", "2026-08-30", "08:00-09:00") // duplicate

	pal, _ := s.Get("pal-1")

	dates := make([]string, 0, len(pal.Availability))
	for _, a := range pal.Availability {
		dates = append(dates, a.Date)
		if !sort.StringsAreSorted(a.Slots) {
			t.Fatalf("slots for %s not sorted: %v", a.Date, a.Slots)
		}
		seen := map[string]bool{}
		for _, slot := range a.Slots {
			if seen[slot] {
				t.Fatalf("duplicate slot %s on %s", slot, a.Date)
			}
			seen[slot] = true
		}
	}
	if !sort.StringsAreSorted(dates) {
		t.Fatalf("dates not sorted: %v", dates)
	}
}

func TestAvailabilityMutationsUnknownPalAreNoOps(t *testing.T) {
	s := NewPalStore(nil)
	s.Seed()

	s.UpdateAvailability("ghost", "2026-08-30", "09:00-11:00")
	s.RestoreAvailability("ghost", "2026-08-30", "09:00-11:00")

	if _, ok := s.Get("ghost"); ok {
		t.Fatal("mutation created a pal")
	}
}
