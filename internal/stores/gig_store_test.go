package stores

import (
	"testing"

	"carelink/internal/models/db_models"
)

func TestAddGigDefaults(t *testing.T) {
	s := NewGigStore(nil)
	s.Seed()

	gig := s.AddGig(NewGigInput{
		SeniorID:   "senior-9",
		SeniorName: "Ira",
		Category:   "grocery",
		Items:      []db_models.GigItem{{Name: "Eggs", Quantity: 12}},
	})

	if gig.ID == "" {
		t.Fatal("expected server-assigned id")
	}
	if gig.Status != db_models.GigPending {
		t.Fatalf("new gig status = %s, want pending", gig.Status)
	}
	if gig.ApprovedByFamily || gig.PaymentGuaranteed {
		t.Fatal("approval flags must start false")
	}
	if gig.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}
	if gig.Items[0].ID == "" {
		t.Fatal("expected item to receive an id")
	}
}

func TestGigStatusOnlyAdvances(t *testing.T) {
	s := NewGigStore(nil)
	s.Seed()
	gig := s.AddGig(NewGigInput{SeniorID: "s", SeniorName: "S", Category: "errand"})

	forward := []db_models.GigStatus{
		db_models.GigPendingApproval,
		db_models.GigApprovedAndAssigned,
		db_models.GigMatched,
		db_models.GigActive,
		db_models.GigCompleted,
	}
	for _, next := range forward {
		s.UpdateGigStatus(gig.ID, next)
		got, _ := s.Get(gig.ID)
		if got.Status != next {
			t.Fatalf("status = %s, want %s", got.Status, next)
		}
	}

	// Every backward move is ignored.
	for _, back := range []db_models.GigStatus{
		db_models.GigPending, db_models.GigMatched, db_models.GigActive,
	} {
		s.UpdateGigStatus(gig.ID, back)
		got, _ := s.Get(gig.ID)
		if got.Status != db_models.GigCompleted {
			t.Fatalf("backward transition to %s was applied", back)
		}
	}

	// Unknown statuses are ignored too.
	s.UpdateGigStatus(gig.ID, db_models.GigStatus("cancelled"))
	got, _ := s.Get(gig.ID)
	if got.Status != db_models.GigCompleted {
		t.Fatal("unknown status was applied")
	}
}

func TestUpdateGigStatusSkipsMissingGig(t *testing.T) {
	s := NewGigStore(nil)
	s.Seed()
	before := s.List()

	s.UpdateGigStatus("nope", db_models.GigActive)

	after := s.List()
	if len(before) != len(after) {
		t.Fatal("unknown id mutated the collection")
	}
}

func TestApproveGigSetsBothFlagsAndStatus(t *testing.T) {
	s := NewGigStore(nil)
	s.Seed()

	other := s.AddGig(NewGigInput{SeniorID: "s2", SeniorName: "Other", Category: "walk"})

	budget := 2000.0
	s.ApproveGig("mock-1", GigApproval{Budget: &budget})

	gig, ok := s.Get("mock-1")
	if !ok {
		t.Fatal("mock-1 missing from seed")
	}
	if gig.Status != db_models.GigApprovedAndAssigned {
		t.Fatalf("status = %s, want approved_and_assigned", gig.Status)
	}
	if !gig.ApprovedByFamily || !gig.PaymentGuaranteed {
		t.Fatal("ApproveGig must set both flags together")
	}
	if gig.Budget != 2000 {
		t.Fatalf("budget = %v, want 2000", gig.Budget)
	}
	if len(gig.Items) != 3 {
		t.Fatalf("items changed during approval: %d", len(gig.Items))
	}

	// Other gigs are untouched.
	got, _ := s.Get(other.ID)
	if got.ApprovedByFamily || got.PaymentGuaranteed || got.Status != db_models.GigPending {
		t.Fatal("approval leaked into another gig")
	}
}

func TestToggleItemDoubleToggleIsIdentity(t *testing.T) {
	s := NewGigStore(nil)
	s.Seed()

	itemChecked := func() bool {
		gig, _ := s.Get("mock-1")
		return gig.Items[0].Checked
	}

	orig := itemChecked()
	s.ToggleItem("mock-1", "item-1")
	if itemChecked() == orig {
		t.Fatal("first toggle had no effect")
	}
	s.ToggleItem("mock-1", "item-1")
	if itemChecked() != orig {
		t.Fatal("double toggle did not restore the original value")
	}
}

func TestToggleItemUnknownIDsAreNoOps(t *testing.T) {
	s := NewGigStore(nil)
	s.Seed()
	before, _ := s.Get("mock-1")

	s.ToggleItem("mock-1", "no-such-item")
	s.ToggleItem("no-such-gig", "item-1")

	after, _ := s.Get("mock-1")
	for i := range before.Items {
		if before.Items[i].Checked != after.Items[i].Checked {
			t.Fatal("unknown id toggled an item")
		}
	}
}

func TestGigDerivedReads(t *testing.T) {
	s := NewGigStore(nil)
	s.Seed()
	s.AddGig(NewGigInput{SeniorID: "senior-2", SeniorName: "Ruth", Category: "walk"})

	pending := s.ListByStatus(db_models.GigPending)
	for _, g := range pending {
		if g.Status != db_models.GigPending {
			t.Fatalf("ListByStatus returned %s gig", g.Status)
		}
	}

	mine := s.ListBySenior("senior-1")
	if len(mine) != 2 {
		t.Fatalf("ListBySenior(senior-1) = %d gigs, want the 2 seeded ones", len(mine))
	}
	if got := s.ListBySenior("senior-2"); len(got) != 1 {
		t.Fatalf("ListBySenior(senior-2) = %d gigs, want 1", len(got))
	}
}

func TestGigSnapshotRoundTrip(t *testing.T) {
	s := NewGigStore(nil)
	s.Seed()
	s.ToggleItem("mock-1", "item-2")

	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	restored := NewGigStore(nil)
	if err := restored.Restore(data); err != nil {
		t.Fatalf("restore: %v", err)
	}

	gig, ok := restored.Get("mock-1")
	if !ok {
		t.Fatal("mock-1 lost in round trip")
	}
	if !gig.Items[1].Checked {
		t.Fatal("checked flag lost in round trip")
	}
}
