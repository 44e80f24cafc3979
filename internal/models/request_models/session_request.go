package request_models

import "carelink/internal/models/db_models"

type SelectRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type RequestOtpRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyOtpRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required,len=6"`
}

type ProfileRequest struct {
	Name             *string                     `json:"name,omitempty"`
	Address          *string                     `json:"address,omitempty"`
	DateOfBirth      *string                     `json:"date_of_birth,omitempty"`
	AvatarURI        *string                     `json:"avatar_uri,omitempty"`
	EmergencyContact *db_models.EmergencyContact `json:"emergency_contact,omitempty"`
	EmergencyPIN     string                      `json:"emergency_pin,omitempty"`
}
