package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "breachcheck/internal/delivery/context"
	"breachcheck/internal/domain/service"
	"breachcheck/internal/util"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// pubSubSender queues SMS jobs on a Google Cloud Pub/Sub topic for an external gateway.
type pubSubSender struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewPubSubSender connects to the topic and fails if it does not exist.
func NewPubSubSender(ctx context.Context, projectID, topicID string, logger *slog.Logger, opts ...option.ClientOption) (service.SMSSender, error) {
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &pubSubSender{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// SendSMS returns once the server has accepted the job; the returned ID is the Pub/Sub message ID.
func (s *pubSubSender) SendSMS(ctx context.Context, phone, message string) (string, error) {
	job := service.SMSJob{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Phone:     phone,
		Message:   message,
	}
	data, err := json.Marshal(job)
	if err != nil {
		return "", errors.WithStack(err)
	}

	msg := &pubsub.Message{Data: data}
	if job.RequestID != "" {
		msg.Attributes = map[string]string{"request_id": job.RequestID}
	}

	serverID, err := s.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return "", errors.Wrap(err, "pubsub publish")
	}

	s.logger.DebugContext(ctx, "[PubSub] SMS job queued",
		slog.String("user", util.MaskPhone(phone)),
		slog.String("server_id", serverID),
	)

	return serverID, nil
}

func (s *pubSubSender) Close() error {
	if s.publisher != nil {
		s.publisher.Stop()
	}
	if s.client != nil {
		return errors.WithStack(s.client.Close())
	}

	return nil
}
