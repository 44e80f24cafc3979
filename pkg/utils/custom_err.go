package utils

import "errors"

var (
	ErrGigNotFound          = errors.New("gig not found")
	ErrPalNotFound          = errors.New("pal not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrTrackingNotFound     = errors.New("tracking entry not found")
	ErrMedicationNotFound   = errors.New("medication not found")
	ErrInvalidRole          = errors.New("invalid role")
	ErrRoleNotSet           = errors.New("role not set")
	ErrPhoneNotVerified     = errors.New("phone not verified")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrInvalidOtpCode       = errors.New("invalid or expired otp code")
	ErrProfileIncomplete    = errors.New("profile incomplete")
	ErrInvalidReading       = errors.New("invalid vital reading")
	ErrUploadRejected       = errors.New("upload rejected")
	ErrStorageError         = errors.New("storage error")
)
