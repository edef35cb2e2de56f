package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"testing"

	"breachcheck/config"
	"breachcheck/internal/domain/entity"
	"breachcheck/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const insertAudit = `INSERT INTO "password_check_audits" ("user_id","check_time","name","sha1_prefix","breach_status","breach_count","created_at") VALUES ($1,$2,$3,$4,$5,$6,$7)`

func newMockDB(t *testing.T, opts ...func(*gorm.Config)) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormCfg := &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	}
	for _, opt := range opts {
		opt(gormCfg)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	require.NoError(t, err)

	return db, mock
}

func testRecord() *entity.AuditRecord {
	return &entity.AuditRecord{
		UserID:       "+15551234567",
		CheckTime:    1760779800000,
		Name:         "Alice",
		HashPrefix:   "CBFDA",
		BreachStatus: entity.BreachStatusBreached,
		BreachCount:  5331,
	}
}

func TestAuditRepository_PutAuditRecord(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(insertAudit)).
		WithArgs("+15551234567", int64(1760779800000), "Alice", "CBFDA", "Breached", 5331, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewAuditRepository(db).PutAuditRecord(context.Background(), testRecord())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_DuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(insertAudit)).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, Message: "duplicate key value violates unique constraint"})

	err := NewAuditRepository(db).PutAuditRecord(context.Background(), testRecord())

	assert.True(t, errors.Is(err, repository.ErrAuditRecordExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_StoreFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(insertAudit)).
		WillReturnError(errors.New("connection reset by peer"))

	err := NewAuditRepository(db).PutAuditRecord(context.Background(), testRecord())

	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrAuditRecordExists))
	assert.Contains(t, err.Error(), "connection reset by peer")
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
}

func TestAuditQueryLogger_HidesBoundValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	db, mock := newMockDB(t, func(c *gorm.Config) {
		c.Logger = newGormSlogLogger(logger, cfg)
	})
	mock.ExpectExec(regexp.QuoteMeta(insertAudit)).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewAuditRepository(db).PutAuditRecord(context.Background(), testRecord()))

	out := buf.String()
	assert.Contains(t, out, "audit query")
	assert.Contains(t, out, "password_check_audits")
	assert.NotContains(t, out, "+15551234567")
	assert.NotContains(t, out, "Alice")
}
