package codes

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrInvalidLength = errors.New("invalid code length")
)

const (
	// TempPasswordLength is the default length of generated temporary
	// passwords for newly provisioned staff accounts.
	TempPasswordLength = 12

	// TokenByteLength is the number of random bytes for tokens (produces 32 hex chars)
	TokenByteLength = 16

	// Mixed case alphanumeric excluding ambiguous characters
	charsetMixedAlphanumeric = "ABCDEFGHJKMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"
)

// GenerateTempPassword creates a temporary password for a new staff
// account. The charset avoids ambiguous characters since the password
// is delivered by email and typed by hand once.
func GenerateTempPassword(length int) (string, error) {
	if length < 1 {
		length = TempPasswordLength
	}
	return generateFromCharset(length, charsetMixedAlphanumeric)
}

// GenerateSecureToken creates a cryptographically secure hex token.
// byteLength specifies the number of random bytes (output will be 2x this length in hex).
func GenerateSecureToken(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", ErrInvalidLength
	}

	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}

// GenerateCode creates a code of specified length from a given character set.
func GenerateCode(length int, charset string) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}
	if len(charset) == 0 {
		return "", errors.New("charset cannot be empty")
	}

	return generateFromCharset(length, charset)
}

func generateFromCharset(length int, charset string) (string, error) {
	result := make([]byte, length)
	max := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		result[i] = charset[n.Int64()]
	}

	return string(result), nil
}
