package entity

import (
	"crypto/sha1" //nolint:gosec // the breach corpus is indexed by SHA-1
	"encoding/hex"
	"strings"
)

const (
	// DigestPrefixLength is the number of hex characters sent to the breach corpus.
	DigestPrefixLength = 5
	// DigestSuffixLength is the number of hex characters kept in process.
	DigestSuffixLength = sha1.Size*2 - DigestPrefixLength
)

// PasswordDigest is the uppercase hex SHA-1 of a password split for a
// k-anonymity range query. Only Prefix may leave the process.
type PasswordDigest struct {
	Prefix string
	Suffix string
}

// NewPasswordDigest hashes the password and splits the hex digest 5/35.
func NewPasswordDigest(password string) PasswordDigest {
	sum := sha1.Sum([]byte(password)) //nolint:gosec
	full := strings.ToUpper(hex.EncodeToString(sum[:]))

	return PasswordDigest{
		Prefix: full[:DigestPrefixLength],
		Suffix: full[DigestPrefixLength:],
	}
}

// IsRangePrefix reports whether s is a well-formed range prefix:
// exactly five uppercase hex characters.
func IsRangePrefix(s string) bool {
	if len(s) != DigestPrefixLength {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9') && !(r >= 'A' && r <= 'F') {
			return false
		}
	}

	return true
}
