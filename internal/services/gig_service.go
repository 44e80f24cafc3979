package services

import (
	"fmt"

	"carelink/internal/models/db_models"
	"carelink/internal/stores"
	"carelink/pkg/utils"
)

type GigServiceInterface interface {
	CreateGig(in stores.NewGigInput) db_models.Gig
	GetGig(id string) (db_models.Gig, error)
	ListGigs(status string, seniorID string) []db_models.Gig
	AdvanceStatus(id string, status string) (db_models.Gig, error)
	Approve(id string, upd stores.GigApproval) (db_models.Gig, error)
	Assign(id string, palID string, palName string) (db_models.Gig, error)
	ToggleItem(gigID string, itemID string) (db_models.Gig, error)
}

type GigService struct {
	gigs          *stores.GigStore
	notifications *stores.NotificationStore
}

func NewGigService(gigs *stores.GigStore, notifications *stores.NotificationStore) GigServiceInterface {
	return &GigService{
		gigs:          gigs,
		notifications: notifications,
	}
}

func (g *GigService) CreateGig(in stores.NewGigInput) db_models.Gig {
	gig := g.gigs.AddGig(in)

	// Independent of the gig write; if this fails nobody rolls the gig back.
	g.notifications.Add(
		db_models.NotificationTask,
		"New gig requested",
		fmt.Sprintf("%s requested: %s", gig.SeniorName, gig.Category),
		"gigs",
	)
	return gig
}

func (g *GigService) GetGig(id string) (db_models.Gig, error) {
	gig, ok := g.gigs.Get(id)
	if !ok {
		return db_models.Gig{}, utils.ErrGigNotFound
	}
	return gig, nil
}

func (g *GigService) ListGigs(status string, seniorID string) []db_models.Gig {
	switch {
	case status != "":
		return g.gigs.ListByStatus(db_models.GigStatus(status))
	case seniorID != "":
		return g.gigs.ListBySenior(seniorID)
	}
	return g.gigs.List()
}

func (g *GigService) AdvanceStatus(id string, status string) (db_models.Gig, error) {
	if _, ok := g.gigs.Get(id); !ok {
		return db_models.Gig{}, utils.ErrGigNotFound
	}
	g.gigs.UpdateGigStatus(id, db_models.GigStatus(status))
	gig, _ := g.gigs.Get(id)
	return gig, nil
}

func (g *GigService) Approve(id string, upd stores.GigApproval) (db_models.Gig, error) {
	if _, ok := g.gigs.Get(id); !ok {
		return db_models.Gig{}, utils.ErrGigNotFound
	}
	g.gigs.ApproveGig(id, upd)
	gig, _ := g.gigs.Get(id)

	g.notifications.Add(
		db_models.NotificationTask,
		"Gig approved",
		fmt.Sprintf("Payment guaranteed for: %s", gig.Category),
		"gigs",
	)
	return gig, nil
}

func (g *GigService) Assign(id string, palID string, palName string) (db_models.Gig, error) {
	if _, ok := g.gigs.Get(id); !ok {
		return db_models.Gig{}, utils.ErrGigNotFound
	}
	g.gigs.AssignPal(id, palID, palName)
	gig, _ := g.gigs.Get(id)
	return gig, nil
}

func (g *GigService) ToggleItem(gigID string, itemID string) (db_models.Gig, error) {
	gig, ok := g.gigs.Get(gigID)
	if !ok {
		return db_models.Gig{}, utils.ErrGigNotFound
	}
	g.gigs.ToggleItem(gigID, itemID)
	gig, _ = g.gigs.Get(gigID)
	return gig, nil
}
