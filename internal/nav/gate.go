// Package nav decides, on every navigation event, whether the user's current
// location is allowed for their onboarding state and where to send them if it
// is not. There is exactly one rule table; every caller evaluates it through
// Evaluate.
package nav

import (
	"carelink/internal/models/db_models"
)

type Location string

const (
	LocWelcome       Location = "welcome"
	LocRoleSelect    Location = "role-selection"
	LocPhoneEntry    Location = "phone-entry"
	LocOtpVerify     Location = "otp-verify"
	LocRegisterSenior Location = "register-senior"
	LocRegisterFamily Location = "register-family"
	LocRegisterPal    Location = "register-pal"

	LocSeniorHome Location = "senior-home"
	LocFamilyHome Location = "family-home"
	LocPalHome    Location = "pal-home"

	LocGigs          Location = "gigs"
	LocHealth        Location = "health"
	LocMedications   Location = "medications"
	LocChat          Location = "chat"
	LocTracking      Location = "tracking"
	LocNotifications Location = "notifications"
	LocProfile       Location = "profile"
)

// State is the onboarding progress ladder. Each state strictly extends the
// permitted set of the one before it until Ready, which swaps to the
// post-auth area.
type State int

const (
	StateNoRole State = iota
	StateNoPhone
	StateNoProfile
	StateReady
)

func (s State) String() string {
	switch s {
	case StateNoRole:
		return "no_role"
	case StateNoPhone:
		return "no_phone"
	case StateNoProfile:
		return "no_profile"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

var onboardingLocations = map[Location]bool{
	LocWelcome:        true,
	LocRoleSelect:     true,
	LocPhoneEntry:     true,
	LocOtpVerify:      true,
	LocRegisterSenior: true,
	LocRegisterFamily: true,
	LocRegisterPal:    true,
}

var sharedPostAuth = map[Location]bool{
	LocGigs:          true,
	LocHealth:        true,
	LocMedications:   true,
	LocChat:          true,
	LocTracking:      true,
	LocNotifications: true,
	LocProfile:       true,
}

// StateOf derives the gate state from the session. The ladder mirrors the
// onboarding invariant: role before phone, phone before profile.
func StateOf(u db_models.User) State {
	switch {
	case !u.Role.Valid():
		return StateNoRole
	case u.Phone == "":
		return StateNoPhone
	case u.Name == "":
		return StateNoProfile
	}
	return StateReady
}

func RegistrationFor(role db_models.Role) Location {
	switch role {
	case db_models.RoleSenior:
		return LocRegisterSenior
	case db_models.RoleFamily:
		return LocRegisterFamily
	case db_models.RolePal:
		return LocRegisterPal
	}
	return LocRoleSelect
}

func HomeFor(role db_models.Role) Location {
	switch role {
	case db_models.RoleSenior:
		return LocSeniorHome
	case db_models.RoleFamily:
		return LocFamilyHome
	case db_models.RolePal:
		return LocPalHome
	}
	return LocWelcome
}

// Permitted reports whether loc is allowed in state s for the given role.
// The mapping is total: every state answers for every location.
func Permitted(s State, role db_models.Role, loc Location) bool {
	switch s {
	case StateNoRole:
		return loc == LocWelcome || loc == LocRoleSelect
	case StateNoPhone:
		return loc == LocWelcome || loc == LocRoleSelect ||
			loc == LocPhoneEntry || loc == LocOtpVerify
	case StateNoProfile:
		return loc == LocWelcome || loc == LocRoleSelect ||
			loc == LocPhoneEntry || loc == LocOtpVerify ||
			loc == RegistrationFor(role)
	case StateReady:
		return !onboardingLocations[loc] &&
			(sharedPostAuth[loc] || loc == HomeFor(role))
	}
	return false
}

// CanonicalEntry is the redirect target when the current location is not
// permitted for the state.
func CanonicalEntry(s State, role db_models.Role) Location {
	switch s {
	case StateNoRole:
		return LocWelcome
	case StateNoPhone:
		return LocPhoneEntry
	case StateNoProfile:
		return RegistrationFor(role)
	case StateReady:
		return HomeFor(role)
	}
	return LocWelcome
}

// Evaluate recomputes the state from the session and compares it against the
// current location. It returns the redirect target and true if a redirect is
// needed. It never redirects to the location the user is already at, so
// re-evaluating after a redirect is always a no-op.
func Evaluate(u db_models.User, current Location) (Location, bool) {
	state := StateOf(u)
	if Permitted(state, u.Role, current) {
		return "", false
	}

	target := CanonicalEntry(state, u.Role)
	if target == current {
		return "", false
	}
	return target, true
}
