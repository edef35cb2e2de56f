// Package model holds the GORM table mappings.
package model

import (
	"time"
)

// PasswordCheckAuditModel is the GORM-specific struct for the 'password_check_audits' table.
// (user_id, check_time) is the primary key; rows are insert-only.
// Keep in sync with postgres/schema.sql.
type PasswordCheckAuditModel struct {
	UserID       string    `gorm:"column:user_id;type:text;primaryKey;autoIncrement:false"`
	CheckTime    int64     `gorm:"column:check_time;primaryKey;autoIncrement:false"`
	Name         string    `gorm:"column:name;type:text;not null"`
	SHA1Prefix   string    `gorm:"column:sha1_prefix;type:char(5);not null"`
	BreachStatus string    `gorm:"column:breach_status;type:varchar(16);not null"`
	BreachCount  int       `gorm:"column:breach_count;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName explicitly sets the table name for GORM.
func (PasswordCheckAuditModel) TableName() string {
	return "password_check_audits"
}
