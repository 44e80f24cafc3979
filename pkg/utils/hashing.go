package utils

import (
	"errors"
	"golang.org/x/crypto/bcrypt"
	"math/rand"
)

// HashPIN hashes the senior's emergency PIN before it touches the profile.
func HashPIN(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), 10)
	return string(bytes), err
}

func ComparePIN(hashedPIN string, plainPIN string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(plainPIN))
}

func GenerateOtpCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid OTP length")
	}

	const digits = "0123456789"
	otp := make([]byte, length)
	for i := range otp {
		otp[i] = digits[rand.Intn(len(digits))]
	}

	return string(otp), nil
}
