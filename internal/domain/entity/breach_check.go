// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// BreachStatus is the outcome reported to the caller and stored in the audit trail.
type BreachStatus string

const (
	BreachStatusSafe     BreachStatus = "Safe"
	BreachStatusBreached BreachStatus = "Breached"
)

// BreachLookupResult is derived from a single range query and never persisted on its own.
type BreachLookupResult struct {
	IsBreached  bool
	BreachCount int
}

// Status maps the lookup result to a BreachStatus.
func (r BreachLookupResult) Status() BreachStatus {
	if r.IsBreached {
		return BreachStatusBreached
	}

	return BreachStatusSafe
}

// AuditRecord is the durable log entry for one check.
// (UserID, CheckTime) is unique; the record is never updated after it is written.
type AuditRecord struct {
	UserID       string       `json:"user_id"`       // The phone number the check was submitted for.
	CheckTime    int64        `json:"check_time"`    // Epoch milliseconds at the time of the check.
	Name         string       `json:"name"`          // The submitted display name.
	HashPrefix   string       `json:"hash_prefix"`   // First five hex characters of the SHA-1 digest.
	BreachStatus BreachStatus `json:"breach_status"` // Safe or Breached.
	BreachCount  int          `json:"breach_count"`  // Occurrences in the breach corpus, 0 when safe.
}

// NewAuditRecord builds the record for a finished lookup.
func NewAuditRecord(phone, name string, digest PasswordDigest, result BreachLookupResult, checkedAt time.Time) *AuditRecord {
	return &AuditRecord{
		UserID:       phone,
		CheckTime:    checkedAt.UnixMilli(),
		Name:         name,
		HashPrefix:   digest.Prefix,
		BreachStatus: result.Status(),
		BreachCount:  result.BreachCount,
	}
}

// CheckedAt returns CheckTime as a time.Time in UTC.
func (r *AuditRecord) CheckedAt() time.Time {
	return time.UnixMilli(r.CheckTime).UTC()
}

// NotificationOutcome is the result of a best-effort SMS dispatch.
// Callers inspect it for logging and then drop it; it never affects the response.
type NotificationOutcome struct {
	Delivered bool
	MessageID string
	Err       error
}
