package util

import (
	"strings"
)

const visiblePhoneDigits = 4

// MaskPhone hides all but the last four characters of a phone number for logs.
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if len(phone) <= visiblePhoneDigits {
		return strings.Repeat("*", len(phone))
	}

	return strings.Repeat("*", len(phone)-visiblePhoneDigits) + phone[len(phone)-visiblePhoneDigits:]
}
