package services

import (
	"context"
	"time"

	"carelink/internal/models/db_models"
	"carelink/internal/stores"
	"carelink/pkg/utils"
)

type PalServiceInterface interface {
	FetchPals(ctx context.Context) ([]db_models.Pal, error)
	GetPal(id string) (db_models.Pal, error)
	BookSlot(palID string, date string, slot string) (db_models.Pal, error)
	ReleaseSlot(palID string, date string, slot string) (db_models.Pal, error)
}

type PalService struct {
	pals       *stores.PalStore
	fetchDelay time.Duration
}

// NewPalService takes the simulated network delay as a parameter so tests
// run with zero delay.
func NewPalService(pals *stores.PalStore, fetchDelay time.Duration) PalServiceInterface {
	return &PalService{
		pals:       pals,
		fetchDelay: fetchDelay,
	}
}

// FetchPals is a fetch-style read: it resolves after the configured delay and
// honors cancellation, so the caller renders an in-progress state meanwhile.
func (p *PalService) FetchPals(ctx context.Context) ([]db_models.Pal, error) {
	if p.fetchDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.fetchDelay):
		}
	}
	return p.pals.List(), nil
}

func (p *PalService) GetPal(id string) (db_models.Pal, error) {
	pal, ok := p.pals.Get(id)
	if !ok {
		return db_models.Pal{}, utils.ErrPalNotFound
	}
	return pal, nil
}

// BookSlot takes a slot out of the pal's calendar.
func (p *PalService) BookSlot(palID string, date string, slot string) (db_models.Pal, error) {
	if _, ok := p.pals.Get(palID); !ok {
		return db_models.Pal{}, utils.ErrPalNotFound
	}
	p.pals.UpdateAvailability(palID, date, slot)
	pal, _ := p.pals.Get(palID)
	return pal, nil
}

// ReleaseSlot puts a slot back, e.g. after a cancelled booking.
func (p *PalService) ReleaseSlot(palID string, date string, slot string) (db_models.Pal, error) {
	if _, ok := p.pals.Get(palID); !ok {
		return db_models.Pal{}, utils.ErrPalNotFound
	}
	p.pals.RestoreAvailability(palID, date, slot)
	pal, _ := p.pals.Get(palID)
	return pal, nil
}
