package postgres

import (
	"context"

	"breachcheck/internal/domain/entity"
	"breachcheck/internal/domain/repository"
	"breachcheck/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for the PostgreSQL audit repository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// PutAuditRecord inserts one row. Existing rows are never overwritten.
func (repo *auditRepository) PutAuditRecord(ctx context.Context, record *entity.AuditRecord) error {
	auditM := fromAuditDomain(record)

	if err := repo.db.WithContext(ctx).Create(auditM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrAuditRecordExists, "insert audit record")
		}

		return errors.Wrap(err, "insert audit record")
	}

	return nil
}

func fromAuditDomain(record *entity.AuditRecord) *model.PasswordCheckAuditModel {
	return &model.PasswordCheckAuditModel{
		UserID:       record.UserID,
		CheckTime:    record.CheckTime,
		Name:         record.Name,
		SHA1Prefix:   record.HashPrefix,
		BreachStatus: string(record.BreachStatus),
		BreachCount:  record.BreachCount,
	}
}
