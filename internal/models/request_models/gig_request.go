package request_models

type GigItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type CreateGigRequest struct {
	SeniorID   string           `json:"senior_id" binding:"required"`
	SeniorName string           `json:"senior_name" binding:"required"`
	FamilyID   string           `json:"family_id"`
	Category   string           `json:"category" binding:"required"`
	Items      []GigItemRequest `json:"items" binding:"required,dive"`
	Budget     float64          `json:"budget"`
}

type GigStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApproveGigRequest struct {
	Budget  *float64 `json:"budget,omitempty"`
	PalID   *string  `json:"pal_id,omitempty"`
	PalName *string  `json:"pal_name,omitempty"`
}

type AssignPalRequest struct {
	PalID   string `json:"pal_id" binding:"required"`
	PalName string `json:"pal_name" binding:"required"`
}
