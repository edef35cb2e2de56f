// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"breachcheck/internal/domain/entity"
)

// ErrAuditRecordExists is returned when a record with the same (UserID, CheckTime) is already stored.
var ErrAuditRecordExists = errors.New("audit record already exists")

// AuditRepository persists one audit record per password check.
type AuditRepository interface {
	// PutAuditRecord writes the record. It is not retried and not best-effort:
	// any error means the check must fail.
	PutAuditRecord(ctx context.Context, record *entity.AuditRecord) error
}
