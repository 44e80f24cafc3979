// pkg/memcache/otp_codes.go
package mem

import (
	"sync"
	"time"
)

type OtpCodeStore interface {
	Set(phone string, code string, ttl time.Duration)

	// Consume returns the code stored for phone if not expired, and removes
	// it (single-use). Returns "" if missing/expired.
	Consume(phone string) string

	// Peek reads without consuming; used by the resend gate.
	Peek(phone string) (string, bool)
}

type entry struct {
	code      string
	expiresAt time.Time
}

type OtpCodes struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewOtpCodes() *OtpCodes {
	return &OtpCodes{
		data: make(map[string]entry),
	}
}

func (s *OtpCodes) Set(phone string, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[phone] = entry{
		code:      code,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *OtpCodes) Consume(phone string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[phone]
	if !ok {
		return ""
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, phone) // cleanup expired
		return ""
	}
	delete(s.data, phone) // single-use
	return e.code
}

func (s *OtpCodes) Peek(phone string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[phone]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.code, true
}
