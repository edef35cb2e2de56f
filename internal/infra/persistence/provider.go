// Package persistence selects the audit store backend.
package persistence

import (
	"context"
	"log/slog"

	"breachcheck/config"
	"breachcheck/internal/domain/constants"
	"breachcheck/internal/domain/repository"
	"breachcheck/internal/infra/awsconfig"
	"breachcheck/internal/infra/persistence/dynamo"
	"breachcheck/internal/infra/persistence/postgres"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuditRepositoryParams holds dependencies for AuditRepository, injected by Fx
type AuditRepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAuditRepository creates the AuditRepository named by audit.provider
func NewAuditRepository(params AuditRepositoryParams) (repository.AuditRepository, error) {
	cfg := params.Config.Audit
	if cfg == nil {
		return nil, errors.New("audit store is not configured")
	}

	switch cfg.Provider {
	case constants.AuditProviderDynamoDB:
		if cfg.TableName == "" {
			return nil, errors.New("table name is required for dynamodb provider")
		}

		awsCfg, err := awsconfig.Load(params.Ctx, params.Config.AWS)
		if err != nil {
			return nil, err
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = awsconfig.BaseEndpoint(params.Config.AWS)
		})
		params.Logger.Info("Using DynamoDB audit store",
			slog.String("table", cfg.TableName),
			slog.String("region", awsCfg.Region),
		)

		return dynamo.NewAuditRepository(client, cfg.TableName), nil

	case constants.AuditProviderPostgres:
		db, err := postgres.New(params.Lc, params.Config, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using PostgreSQL audit store")

		return postgres.NewAuditRepository(db), nil

	default:
		return nil, errors.Errorf("unknown audit provider: %s", cfg.Provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAuditRepository),
)
