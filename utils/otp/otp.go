package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
)

const (
	minCode = 100000
	maxCode = 999999
)

var codeSpan = big.NewInt(maxCode - minCode + 1)

// Generate returns a uniformly random 6 digit code in [100000, 999999].
func Generate() (string, error) {
	return generate(rand.Reader)
}

func generate(r io.Reader) (string, error) {
	n, err := rand.Int(r, codeSpan)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+minCode), nil
}

// Equal compares two codes in constant time. Empty codes never match.
func Equal(expected, given string) bool {
	if expected == "" || given == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(given)) == 1
}
