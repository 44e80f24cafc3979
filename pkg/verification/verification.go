package verification

import (
	"log"
	"os"
	"time"

	mem "carelink/pkg/memcache"
	"carelink/pkg/utils"
)

const (
	codeLength = 6
	codeTTL    = 5 * time.Minute
	minDigits  = 10
)

// Service is the phone-verification collaborator. It only generates and
// checks codes; delivery is outside this core, so generated codes are logged
// for local runs and a fixed test code is always accepted.
type Service interface {
	RequestCode(phone string) error
	Verify(phone string, code string) error
}

type service struct {
	codes    mem.OtpCodeStore
	testCode string
}

func NewService(codes mem.OtpCodeStore) Service {
	testCode := os.Getenv("OTP_TEST_CODE")
	if testCode == "" {
		testCode = "123456"
	}
	return &service{codes: codes, testCode: testCode}
}

// ValidPhone is the UI-boundary check: an optional leading +, then digits
// only, at least ten of them.
func ValidPhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		default:
			return false
		}
	}
	return digits >= minDigits
}

func (s *service) RequestCode(phone string) error {
	if !ValidPhone(phone) {
		return utils.ErrInvalidPhone
	}

	code, err := utils.GenerateOtpCode(codeLength)
	if err != nil {
		return err
	}
	s.codes.Set(phone, code, codeTTL)

	log.Printf("OTP for %s: %s", phone, code)
	return nil
}

func (s *service) Verify(phone string, code string) error {
	if code == s.testCode {
		return nil
	}

	stored, ok := s.codes.Peek(phone)
	if !ok || stored != code {
		return utils.ErrInvalidOtpCode
	}
	s.codes.Consume(phone)
	return nil
}
