package db_models

// Role is the user's position in the care triangle.
type Role string

const (
	RoleUnset  Role = ""
	RoleSenior Role = "senior"
	RoleFamily Role = "family"
	RolePal    Role = "pal"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSenior, RoleFamily, RolePal:
		return true
	}
	return false
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// User holds identity plus onboarding progress. Role must be set before
// Phone, and Phone before the profile counts as complete.
type User struct {
	Role             Role             `json:"role"`
	Phone            string           `json:"phone"`
	Name             string           `json:"name"`
	Address          string           `json:"address"`
	DateOfBirth      string           `json:"date_of_birth"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	EmergencyPINHash string           `json:"emergency_pin_hash"`
	AvatarURI        string           `json:"avatar_uri"`
}
