package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "breachcheck/internal/delivery/context"
	"breachcheck/internal/domain/service"
	"breachcheck/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSenderTimeout = 10 * time.Second

// localHTTPSender posts SMS jobs to a development endpoint instead of a real gateway.
type localHTTPSender struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPSender creates the development SMS sender.
func NewLocalHTTPSender(endpoint string, logger *slog.Logger) service.SMSSender {
	return &localHTTPSender{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localSenderTimeout},
		logger:     logger,
	}
}

func (s *localHTTPSender) SendSMS(ctx context.Context, phone, message string) (string, error) {
	job := service.SMSJob{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Phone:     phone,
		Message:   message,
	}
	body, err := json.Marshal(job)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if job.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, job.RequestID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("sms endpoint returned non-success status: %d", resp.StatusCode)
	}

	messageID := uuid.New().String()
	s.logger.DebugContext(ctx, "[LocalSMS] SMS job posted",
		slog.String("endpoint", s.endpoint),
		slog.String("user", util.MaskPhone(phone)),
		slog.String("message_id", messageID),
	)

	return messageID, nil
}

func (s *localHTTPSender) Close() error {
	return nil
}
