package request_models

import "carelink/internal/models/db_models"

type AddMedicationRequest struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage" binding:"required"`
	Frequency string `json:"frequency" binding:"required"`
	Time      string `json:"time" binding:"required"`
	AddedBy   string `json:"added_by" binding:"required"`
}

type MedicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type MarkTakenRequest struct {
	Taken bool `json:"taken"`
}

type SlotRequest struct {
	Date string `json:"date" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}

type TrackingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TrackingLocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

type TrackingAssignRequest struct {
	PalID string `json:"pal_id" binding:"required"`
}

type SendMessageRequest struct {
	SenderID string `json:"sender_id" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

type StartConversationRequest struct {
	Participants []db_models.Participant `json:"participants" binding:"required,min=2"`
}
