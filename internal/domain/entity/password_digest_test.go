package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPasswordDigest_KnownValue(t *testing.T) {
	// SHA-1("password123") = CBFDAC6008F9CAB4083784CBD1874F76618D2A97
	digest := NewPasswordDigest("password123")

	assert.Equal(t, "CBFDA", digest.Prefix)
	assert.Equal(t, "C6008F9CAB4083784CBD1874F76618D2A97", digest.Suffix)
}

func TestNewPasswordDigest_ShapeAndDeterminism(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"single char", "a"},
		{"ascii word", "password"},
		{"passphrase", "correct horse battery staple"},
		{"cyrillic", "пароль"},
		{"long", strings.Repeat("x", 4096)},
	}

	for _, tt := range tests {
		password := tt.password
		t.Run(tt.name, func(t *testing.T) {
			first := NewPasswordDigest(password)
			second := NewPasswordDigest(password)

			assert.Equal(t, first, second)
			assert.Len(t, first.Prefix, DigestPrefixLength)
			assert.Len(t, first.Suffix, DigestSuffixLength)
			assert.True(t, IsRangePrefix(first.Prefix))
			assert.Equal(t, strings.ToUpper(first.Suffix), first.Suffix)
		})
	}
}

func TestIsRangePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"CBFDA", true},
		{"00000", true},
		{"cbfda", false},
		{"CBFD", false},
		{"CBFDAC", false},
		{"CBFDG", false},
		{"../ab", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRangePrefix(tt.in), tt.in)
	}
}

func TestNewAuditRecord(t *testing.T) {
	checkedAt := time.Date(2026, 3, 1, 12, 0, 0, 123_000_000, time.UTC)
	digest := NewPasswordDigest("password123")

	record := NewAuditRecord("+15551234567", "Alice", digest, BreachLookupResult{IsBreached: true, BreachCount: 5331}, checkedAt)

	assert.Equal(t, "+15551234567", record.UserID)
	assert.Equal(t, checkedAt.UnixMilli(), record.CheckTime)
	assert.Equal(t, "Alice", record.Name)
	assert.Equal(t, "CBFDA", record.HashPrefix)
	assert.Equal(t, BreachStatusBreached, record.BreachStatus)
	assert.Equal(t, 5331, record.BreachCount)
	assert.True(t, checkedAt.Equal(record.CheckedAt()))
}

func TestBreachLookupResult_Status(t *testing.T) {
	assert.Equal(t, BreachStatusSafe, BreachLookupResult{}.Status())
	assert.Equal(t, BreachStatusBreached, BreachLookupResult{IsBreached: true, BreachCount: 1}.Status())
}
