package services

import (
	"carelink/internal/models/db_models"
	"carelink/internal/nav"
	"carelink/internal/stores"
	"carelink/pkg/utils"
	"carelink/pkg/verification"
)

type SessionServiceInterface interface {
	SelectRole(role string) error
	RequestOtp(phone string) error
	VerifyOtp(phone string, code string) error
	CompleteProfile(upd stores.ProfileUpdate, emergencyPIN string) (string, error)
	Logout()
	Current() SessionView
}

// SessionView is what the client needs to render the session: the user, the
// derived gate state, and whether the profile counts as complete.
type SessionView struct {
	User            db_models.User `json:"user"`
	State           string         `json:"state"`
	ProfileComplete bool           `json:"profile_complete"`
}

type SessionService struct {
	session  *stores.SessionStore
	verifier verification.Service
}

func NewSessionService(session *stores.SessionStore, verifier verification.Service) SessionServiceInterface {
	return &SessionService{
		session:  session,
		verifier: verifier,
	}
}

func (s *SessionService) SelectRole(role string) error {
	r := db_models.Role(role)
	if !r.Valid() {
		return utils.ErrInvalidRole
	}
	s.session.SetRole(r)
	return nil
}

func (s *SessionService) RequestOtp(phone string) error {
	if !s.session.User().Role.Valid() {
		return utils.ErrRoleNotSet
	}
	return s.verifier.RequestCode(phone)
}

// VerifyOtp records the phone only after the verification collaborator
// accepts the code.
func (s *SessionService) VerifyOtp(phone string, code string) error {
	if !s.session.User().Role.Valid() {
		return utils.ErrRoleNotSet
	}
	if !verification.ValidPhone(phone) {
		return utils.ErrInvalidPhone
	}
	if err := s.verifier.Verify(phone, code); err != nil {
		return err
	}
	s.session.SetPhone(phone)
	return nil
}

// CompleteProfile merges the update and, once the profile is complete, mints
// the session token for the post-auth area.
func (s *SessionService) CompleteProfile(upd stores.ProfileUpdate, emergencyPIN string) (string, error) {
	if s.session.User().Phone == "" {
		return "", utils.ErrPhoneNotVerified
	}

	s.session.UpdateProfile(upd)

	if emergencyPIN != "" {
		hash, err := utils.HashPIN(emergencyPIN)
		if err != nil {
			return "", err
		}
		s.session.SetEmergencyPINHash(hash)
	}

	if !s.session.ProfileComplete() {
		return "", utils.ErrProfileIncomplete
	}

	user := s.session.User()
	return utils.CreateToken(user.Phone, user.Role)
}

func (s *SessionService) Logout() {
	s.session.Logout()
}

func (s *SessionService) Current() SessionView {
	user := s.session.User()
	return SessionView{
		User:            user,
		State:           nav.StateOf(user).String(),
		ProfileComplete: s.session.ProfileComplete(),
	}
}
