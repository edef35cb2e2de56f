package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "breachcheck/internal/delivery/context"
	"breachcheck/internal/domain/entity"
	domainerrors "breachcheck/internal/domain/errors"
	"breachcheck/internal/domain/repository"
	"breachcheck/internal/domain/service"
	"breachcheck/internal/errors"
	"breachcheck/internal/usecase"
	"breachcheck/internal/util"

	"go.uber.org/fx"
)

const (
	checkCompleteMessage = "Check complete. Status returned."
	smsGreeting          = "Hello %s. Your password check status: "
)

// BreachCheckServiceParams holds dependencies for the breach check use case, injected by Fx.
type BreachCheckServiceParams struct {
	fx.In

	Logger    *slog.Logger
	LookupSvc service.BreachLookupService
	AuditRepo repository.AuditRepository
	SMSSender service.SMSSender
}

type breachCheckService struct {
	logger    *slog.Logger
	lookupSvc service.BreachLookupService
	auditRepo repository.AuditRepository
	smsSender service.SMSSender
	now       func() time.Time
}

// NewBreachCheckService creates the breach check use case
func NewBreachCheckService(params BreachCheckServiceParams) usecase.BreachCheckUsecase {
	return &breachCheckService{
		logger:    params.Logger,
		lookupSvc: params.LookupSvc,
		auditRepo: params.AuditRepo,
		smsSender: params.SMSSender,
		now:       time.Now,
	}
}

func (s *breachCheckService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CheckPassword runs validate, hash, lookup, audit, notify in that order.
// Only the audit write can fail the check after validation.
func (s *breachCheckService) CheckPassword(ctx context.Context, input *usecase.CheckPasswordInput) (*usecase.CheckPasswordOutput, error) {
	if input == nil || input.Name == "" || input.Phone == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidRequest)
	}

	logger := s.getLogger(ctx)

	digest := entity.NewPasswordDigest(input.Password)
	result := s.lookupSvc.Lookup(ctx, digest)
	status := result.Status()

	record := entity.NewAuditRecord(input.Phone, input.Name, digest, result, s.now())
	if err := s.auditRepo.PutAuditRecord(ctx, record); err != nil {
		logger.ErrorContext(ctx, "Failed to write audit record",
			slog.String("user", util.MaskPhone(input.Phone)),
			slog.Int64("check_time", record.CheckTime),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewAuditWriteError(err)
	}

	// The outcome is logged and dropped: SMS delivery never changes the response.
	outcome := s.notify(ctx, input.Phone, composeSMSMessage(input.Name, result))
	s.logNotification(ctx, input.Phone, outcome)

	logger.InfoContext(ctx, "Password check complete",
		slog.String("user", util.MaskPhone(input.Phone)),
		slog.String("prefix", digest.Prefix),
		slog.String("status", string(status)),
		slog.Int("breach_count", result.BreachCount),
	)

	return &usecase.CheckPasswordOutput{
		Message:     checkCompleteMessage,
		Status:      status,
		BreachCount: result.BreachCount,
	}, nil
}

func (s *breachCheckService) notify(ctx context.Context, phone, message string) (outcome entity.NotificationOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = entity.NotificationOutcome{Err: errors.Errorf("sms sender panicked: %v", r)}
		}
	}()

	if s.smsSender == nil {
		return entity.NotificationOutcome{Err: errors.New("no sms sender configured")}
	}

	messageID, err := s.smsSender.SendSMS(ctx, phone, message)
	if err != nil {
		return entity.NotificationOutcome{Err: err}
	}

	return entity.NotificationOutcome{Delivered: true, MessageID: messageID}
}

func (s *breachCheckService) logNotification(ctx context.Context, phone string, outcome entity.NotificationOutcome) {
	logger := s.getLogger(ctx)
	if outcome.Err != nil {
		logger.WarnContext(ctx, "SMS notification failed, continuing",
			slog.String("user", util.MaskPhone(phone)),
			slog.Any("error", outcome.Err),
		)

		return
	}

	logger.InfoContext(ctx, "SMS notification sent",
		slog.String("user", util.MaskPhone(phone)),
		slog.String("message_id", outcome.MessageID),
	)
}

func composeSMSMessage(name string, result entity.BreachLookupResult) string {
	message := fmt.Sprintf(smsGreeting, name)
	if result.IsBreached {
		return message + fmt.Sprintf("Your pass is compromised (found in %d breaches).", result.BreachCount)
	}

	return message + "Your pass is not compromised."
}
