package notification

import (
	"context"
	"log/slog"

	"breachcheck/config"
	"breachcheck/internal/domain/constants"
	"breachcheck/internal/domain/service"
	"breachcheck/internal/infra/awsconfig"
	"breachcheck/internal/util"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopSender drops every message. Used when SMS is disabled.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) SendSMS(ctx context.Context, phone, _ string) (string, error) {
	s.logger.DebugContext(ctx, "[NoopSMS] SMS disabled, skipping",
		slog.String("user", util.MaskPhone(phone)),
	)

	return "", nil
}

func (s *noopSender) Close() error {
	return nil
}

// SenderParams holds dependencies for SMSSender, injected by Fx
type SenderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSMSSender creates an SMSSender based on configuration
func NewSMSSender(params SenderParams) (service.SMSSender, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.SMSProviderNoop {
		logger.Info("SMS notification disabled, using no-op sender")

		return &noopSender{logger: logger}, nil
	}

	var sender service.SMSSender
	var err error

	switch cfg.Provider {
	case constants.SMSProviderSNS:
		awsCfg, loadErr := awsconfig.Load(params.Ctx, params.Config.AWS)
		if loadErr != nil {
			return nil, loadErr
		}
		client := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
			o.BaseEndpoint = awsconfig.BaseEndpoint(params.Config.AWS)
		})
		logger.Info("Using Amazon SNS SMS sender", slog.String("region", awsCfg.Region))

		sender = NewSNSSender(client, cfg.SMSType, cfg.SenderID, logger)

	case constants.SMSProviderPubSub:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for pubsub provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for pubsub provider")
		}
		logger.Info("Using Google Pub/Sub SMS sender",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		sender, err = NewPubSubSender(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.SMSProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP SMS sender", slog.String("endpoint", cfg.LocalEndpoint))

		sender = NewLocalHTTPSender(cfg.LocalEndpoint, logger)

	default:
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing SMS sender")

			return sender.Close()
		},
	})

	return sender, nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSMSSender),
)
