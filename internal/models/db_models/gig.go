package db_models

import "time"

// GigStatus advances strictly forward through the lifecycle below; no
// operation rewinds a gig.
type GigStatus string

const (
	GigPending             GigStatus = "pending"
	GigPendingApproval     GigStatus = "pending_approval"
	GigApprovedAndAssigned GigStatus = "approved_and_assigned"
	GigMatched             GigStatus = "matched"
	GigActive              GigStatus = "active"
	GigCompleted           GigStatus = "completed"
)

var gigStatusRank = map[GigStatus]int{
	GigPending:             0,
	GigPendingApproval:     1,
	GigApprovedAndAssigned: 2,
	GigMatched:             3,
	GigActive:              4,
	GigCompleted:           5,
}

// Rank returns the position of s in the lifecycle, or -1 for an unknown status.
func (s GigStatus) Rank() int {
	if r, ok := gigStatusRank[s]; ok {
		return r
	}
	return -1
}

type GigItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Checked  bool   `json:"checked"`
}

type Gig struct {
	ID                string    `json:"id"`
	SeniorID          string    `json:"senior_id"`
	SeniorName        string    `json:"senior_name"`
	FamilyID          string    `json:"family_id,omitempty"`
	PalID             string    `json:"pal_id,omitempty"`
	PalName           string    `json:"pal_name,omitempty"`
	Status            GigStatus `json:"status"`
	Category          string    `json:"category"`
	Items             []GigItem `json:"items"`
	Budget            float64   `json:"budget,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	ApprovedByFamily  bool      `json:"approved_by_family"`
	PaymentGuaranteed bool      `json:"payment_guaranteed"`
}
