package services

import (
	"errors"
	"testing"

	"carelink/internal/stores"
	mem "carelink/pkg/memcache"
	"carelink/pkg/utils"
	"carelink/pkg/verification"
)

func newSessionService() SessionServiceInterface {
	session := stores.NewSessionStore(nil)
	session.Seed()
	verifier := verification.NewService(mem.NewOtpCodes())
	return NewSessionService(session, verifier)
}

func TestOnboardingFlowEndToEnd(t *testing.T) {
	svc := newSessionService()

	if view := svc.Current(); view.State != "no_role" {
		t.Fatalf("fresh state = %s, want no_role", view.State)
	}

	if err := svc.SelectRole("senior"); err != nil {
		t.Fatalf("SelectRole: %v", err)
	}
	if view := svc.Current(); view.State != "no_phone" {
		t.Fatalf("state after role = %s, want no_phone", view.State)
	}

	if err := svc.RequestOtp("15551234567"); err != nil {
		t.Fatalf("RequestOtp: %v", err)
	}
	if err := svc.VerifyOtp("15551234567", "123456"); err != nil {
		t.Fatalf("VerifyOtp with test code: %v", err)
	}
	if view := svc.Current(); view.State != "no_profile" {
		t.Fatalf("state after phone = %s, want no_profile", view.State)
	}

	name := "Margaret"
	token, err := svc.CompleteProfile(stores.ProfileUpdate{Name: &name}, "4242")
	if err != nil {
		t.Fatalf("CompleteProfile: %v", err)
	}
	if token == "" {
		t.Fatal("no session token minted")
	}

	view := svc.Current()
	if view.State != "ready" || !view.ProfileComplete {
		t.Fatalf("view = %+v, want ready and complete", view)
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Phone != "15551234567" || claims.Role != "senior" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestSelectRoleRejectsUnknownRole(t *testing.T) {
	svc := newSessionService()

	if err := svc.SelectRole("admin"); !errors.Is(err, utils.ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
}

func TestOtpRequiresRole(t *testing.T) {
	svc := newSessionService()

	if err := svc.RequestOtp("15551234567"); !errors.Is(err, utils.ErrRoleNotSet) {
		t.Fatalf("RequestOtp err = %v, want ErrRoleNotSet", err)
	}
	if err := svc.VerifyOtp("15551234567", "123456"); !errors.Is(err, utils.ErrRoleNotSet) {
		t.Fatalf("VerifyOtp err = %v, want ErrRoleNotSet", err)
	}
}

func TestVerifyOtpRejectsWrongCode(t *testing.T) {
	svc := newSessionService()
	_ = svc.SelectRole("pal")

	if err := svc.VerifyOtp("15551234567", "999999"); !errors.Is(err, utils.ErrInvalidOtpCode) {
		t.Fatalf("err = %v, want ErrInvalidOtpCode", err)
	}
	if view := svc.Current(); view.User.Phone != "" {
		t.Fatal("phone recorded despite failed verification")
	}
}

func TestCompleteProfileRequiresVerifiedPhone(t *testing.T) {
	svc := newSessionService()
	_ = svc.SelectRole("family")

	name := "Dana"
	if _, err := svc.CompleteProfile(stores.ProfileUpdate{Name: &name}, ""); !errors.Is(err, utils.ErrPhoneNotVerified) {
		t.Fatalf("err = %v, want ErrPhoneNotVerified", err)
	}
}

func TestCompleteProfileWithoutNameIsIncomplete(t *testing.T) {
	svc := newSessionService()
	_ = svc.SelectRole("family")
	if err := svc.VerifyOtp("15551234567", "123456"); err != nil {
		t.Fatalf("VerifyOtp: %v", err)
	}

	addr := "12 Elm St"
	if _, err := svc.CompleteProfile(stores.ProfileUpdate{Address: &addr}, ""); !errors.Is(err, utils.ErrProfileIncomplete) {
		t.Fatalf("err = %v, want ErrProfileIncomplete", err)
	}
}

func TestLogoutResetsToOnboarding(t *testing.T) {
	svc := newSessionService()
	_ = svc.SelectRole("senior")
	if err := svc.VerifyOtp("15551234567", "123456"); err != nil {
		t.Fatalf("VerifyOtp: %v", err)
	}

	svc.Logout()

	view := svc.Current()
	if view.State != "no_role" || view.User.Phone != "" {
		t.Fatalf("view after logout = %+v, want empty session", view)
	}
}
