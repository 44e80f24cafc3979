// Package stores holds the in-memory state containers of the app, one per
// entity type. Each store owns its collection exclusively, applies mutations
// in call order, and asks the persistence adapter to flush after every
// mutation. Unknown ids are no-ops, never errors; input validation happens at
// the service boundary before a store is touched.
package stores

import (
	"encoding/json"
	"sync"

	"carelink/internal/models/db_models"
	"carelink/internal/persistence"
)

// ProfileUpdate carries a partial profile merge; nil fields are untouched.
type ProfileUpdate struct {
	Name             *string                     `json:"name,omitempty"`
	Address          *string                     `json:"address,omitempty"`
	DateOfBirth      *string                     `json:"date_of_birth,omitempty"`
	AvatarURI        *string                     `json:"avatar_uri,omitempty"`
	EmergencyContact *db_models.EmergencyContact `json:"emergency_contact,omitempty"`
}

// SessionStore is the identity/session state: current user, role, verified
// phone, and profile progress. The navigation gate reads it on every
// navigation event; it never writes back.
type SessionStore struct {
	mu    sync.RWMutex
	user  db_models.User
	flush persistence.Flusher
}

func NewSessionStore(flush persistence.Flusher) *SessionStore {
	return &SessionStore{flush: flush}
}

func (s *SessionStore) Name() string { return "session" }

func (s *SessionStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.user)
}

func (s *SessionStore) Restore(data []byte) error {
	var u db_models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return nil
}

// Seed starts a fresh session: the empty user, created at first launch.
func (s *SessionStore) Seed() {
	s.mu.Lock()
	s.user = db_models.User{}
	s.mu.Unlock()
}

func (s *SessionStore) notify() {
	if s.flush != nil {
		s.flush.Flush(s)
	}
}

func (s *SessionStore) User() db_models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetRole records the chosen role. Switching to a different role clears the
// role-dependent profile fields so the user re-enters registration rather
// than carrying an incompatible profile.
func (s *SessionStore) SetRole(role db_models.Role) {
	if !role.Valid() {
		return
	}

	s.mu.Lock()
	if s.user.Role.Valid() && s.user.Role != role {
		s.user.Name = ""
		s.user.EmergencyContact = db_models.EmergencyContact{}
		s.user.EmergencyPINHash = ""
	}
	s.user.Role = role
	s.mu.Unlock()

	s.notify()
}

// SetPhone records the verified phone number. Callers invoke it only after
// OTP validation succeeds. No-op while the role is unset.
func (s *SessionStore) SetPhone(phone string) {
	s.mu.Lock()
	if !s.user.Role.Valid() || phone == "" {
		s.mu.Unlock()
		return
	}
	s.user.Phone = phone
	s.mu.Unlock()

	s.notify()
}

// UpdateProfile merges the partial update into the profile. No-op while the
// phone is unverified.
func (s *SessionStore) UpdateProfile(upd ProfileUpdate) {
	s.mu.Lock()
	if s.user.Phone == "" {
		s.mu.Unlock()
		return
	}
	if upd.Name != nil {
		s.user.Name = *upd.Name
	}
	if upd.Address != nil {
		s.user.Address = *upd.Address
	}
	if upd.DateOfBirth != nil {
		s.user.DateOfBirth = *upd.DateOfBirth
	}
	if upd.AvatarURI != nil {
		s.user.AvatarURI = *upd.AvatarURI
	}
	if upd.EmergencyContact != nil {
		s.user.EmergencyContact = *upd.EmergencyContact
	}
	s.mu.Unlock()

	s.notify()
}

func (s *SessionStore) SetEmergencyPINHash(hash string) {
	s.mu.Lock()
	s.user.EmergencyPINHash = hash
	s.mu.Unlock()

	s.notify()
}

// ProfileComplete reports whether role, phone and name are all present.
func (s *SessionStore) ProfileComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Role.Valid() && s.user.Phone != "" && s.user.Name != ""
}

// Logout resets the session to empty, dropping the user back into onboarding
// on the next gate evaluation.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.user = db_models.User{}
	s.mu.Unlock()

	s.notify()
}
