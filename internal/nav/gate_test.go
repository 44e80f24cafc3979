package nav

import (
	"testing"

	"carelink/internal/models/db_models"
)

var allLocations = []Location{
	LocWelcome, LocRoleSelect, LocPhoneEntry, LocOtpVerify,
	LocRegisterSenior, LocRegisterFamily, LocRegisterPal,
	LocSeniorHome, LocFamilyHome, LocPalHome,
	LocGigs, LocHealth, LocMedications, LocChat,
	LocTracking, LocNotifications, LocProfile,
}

func locSet(locs ...Location) map[Location]bool {
	set := make(map[Location]bool, len(locs))
	for _, l := range locs {
		set[l] = true
	}
	return set
}

func TestStateOfLadder(t *testing.T) {
	tests := []struct {
		name string
		user db_models.User
		want State
	}{
		{"empty session", db_models.User{}, StateNoRole},
		{"invalid role", db_models.User{Role: "admin"}, StateNoRole},
		{"role only", db_models.User{Role: db_models.RoleSenior}, StateNoPhone},
		{"role and phone", db_models.User{Role: db_models.RolePal, Phone: "15551234567"}, StateNoProfile},
		{"complete", db_models.User{Role: db_models.RoleFamily, Phone: "15551234567", Name: "Dana"}, StateReady},
	}

	for _, tt := range tests {
		if got := StateOf(tt.user); got != tt.want {
			t.Errorf("%s: StateOf = %s, want %s", tt.name, got, tt.want)
		}
	}
}

// TestPermittedExhaustive pins the entire rule table: every state, every
// role, every location.
func TestPermittedExhaustive(t *testing.T) {
	roles := []db_models.Role{db_models.RoleSenior, db_models.RoleFamily, db_models.RolePal}

	expected := func(s State, role db_models.Role) map[Location]bool {
		switch s {
		case StateNoRole:
			return locSet(LocWelcome, LocRoleSelect)
		case StateNoPhone:
			return locSet(LocWelcome, LocRoleSelect, LocPhoneEntry, LocOtpVerify)
		case StateNoProfile:
			return locSet(LocWelcome, LocRoleSelect, LocPhoneEntry, LocOtpVerify, RegistrationFor(role))
		case StateReady:
			return locSet(LocGigs, LocHealth, LocMedications, LocChat,
				LocTracking, LocNotifications, LocProfile, HomeFor(role))
		}
		return nil
	}

	for _, state := range []State{StateNoRole, StateNoPhone, StateNoProfile, StateReady} {
		for _, role := range roles {
			want := expected(state, role)
			for _, loc := range allLocations {
				if got := Permitted(state, role, loc); got != want[loc] {
					t.Errorf("Permitted(%s, %s, %s) = %v, want %v", state, role, loc, got, want[loc])
				}
			}
		}
	}
}

func TestNoRoleRedirectsPostAuthToWelcome(t *testing.T) {
	user := db_models.User{}
	for _, loc := range []Location{LocSeniorHome, LocGigs, LocHealth, LocChat, LocProfile} {
		target, needed := Evaluate(user, loc)
		if !needed || target != LocWelcome {
			t.Errorf("Evaluate(empty, %s) = (%s, %v), want welcome redirect", loc, target, needed)
		}
	}
}

func TestReadyRedirectsOnboardingToRoleHome(t *testing.T) {
	tests := []struct {
		role db_models.Role
		home Location
	}{
		{db_models.RoleSenior, LocSeniorHome},
		{db_models.RoleFamily, LocFamilyHome},
		{db_models.RolePal, LocPalHome},
	}

	for _, tt := range tests {
		user := db_models.User{Role: tt.role, Phone: "15551234567", Name: "A"}
		for _, loc := range []Location{LocWelcome, LocRoleSelect, LocPhoneEntry, LocOtpVerify, RegistrationFor(tt.role)} {
			target, needed := Evaluate(user, loc)
			if !needed || target != tt.home {
				t.Errorf("Evaluate(ready %s, %s) = (%s, %v), want %s", tt.role, loc, target, needed, tt.home)
			}
		}
	}
}

func TestReadyCannotEnterAnotherRolesHome(t *testing.T) {
	user := db_models.User{Role: db_models.RoleSenior, Phone: "15551234567", Name: "M"}

	target, needed := Evaluate(user, LocPalHome)
	if !needed || target != LocSeniorHome {
		t.Fatalf("Evaluate = (%s, %v), want senior-home redirect", target, needed)
	}
}

// Redirecting must never target the current location, in any state, at any
// location. That is what makes re-evaluation after a redirect a fixpoint.
func TestEvaluateNeverSelfRedirects(t *testing.T) {
	users := []db_models.User{
		{},
		{Role: db_models.RoleSenior},
		{Role: db_models.RoleFamily, Phone: "15551234567"},
		{Role: db_models.RolePal, Phone: "15551234567", Name: "A"},
	}

	for _, user := range users {
		for _, loc := range allLocations {
			target, needed := Evaluate(user, loc)
			if needed && target == loc {
				t.Errorf("self-redirect at %s for state %s", loc, StateOf(user))
			}
			if needed {
				// Following the redirect must land on a permitted location.
				if again, loop := Evaluate(user, target); loop {
					t.Errorf("redirect chain %s -> %s -> %s", loc, target, again)
				}
			}
		}
	}
}

// Scenario: empty session, role gets set, user tries to jump straight to the
// role home; the gate sends them to phone entry instead.
func TestRoleSetThenHomeRedirectsToPhoneEntry(t *testing.T) {
	user := db_models.User{}
	if StateOf(user) != StateNoRole {
		t.Fatal("fresh session should be no_role")
	}

	user.Role = db_models.RoleSenior
	if StateOf(user) != StateNoPhone {
		t.Fatal("after role selection state should be no_phone")
	}

	target, needed := Evaluate(user, LocSeniorHome)
	if !needed || target != LocPhoneEntry {
		t.Fatalf("Evaluate = (%s, %v), want phone-entry redirect", target, needed)
	}
}
