package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"breachcheck/config"
	"breachcheck/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.Config) AuditRepositoryParams {
	return AuditRepositoryParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewAuditRepository_DynamoDB(t *testing.T) {
	cfg := &config.Config{
		AWS: &config.AWSConfig{
			Region:          "eu-west-1",
			Endpoint:        "http://localhost:8000",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		},
		Audit: &config.AuditConfig{Provider: constants.AuditProviderDynamoDB, TableName: "PasswordCheckAudit"},
	}

	repo, err := NewAuditRepository(newParams(t, cfg))

	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestNewAuditRepository_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{"no audit section", &config.Config{}, "audit store is not configured"},
		{"dynamodb without table", &config.Config{Audit: &config.AuditConfig{Provider: constants.AuditProviderDynamoDB}}, "table name is required"},
		{"postgres without connection", &config.Config{Audit: &config.AuditConfig{Provider: constants.AuditProviderPostgres}}, "requires postgres configuration"},
		{"unknown provider", &config.Config{Audit: &config.AuditConfig{Provider: "s3"}}, "unknown audit provider: s3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAuditRepository(newParams(t, tt.cfg))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
