// Package notification delivers the post-check SMS through the configured provider.
package notification

import (
	"context"
	"log/slog"

	"breachcheck/internal/domain/service"
	"breachcheck/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
)

const (
	snsAttrSMSType  = "AWS.SNS.SMS.SMSType"
	snsAttrSenderID = "AWS.SNS.SMS.SenderID"
)

// SNSPublishAPI is the subset of *sns.Client used by the sender.
type SNSPublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsSender struct {
	client   SNSPublishAPI
	smsType  string
	senderID string
	logger   *slog.Logger
}

// NewSNSSender publishes directly to a phone number through Amazon SNS.
func NewSNSSender(client SNSPublishAPI, smsType, senderID string, logger *slog.Logger) service.SMSSender {
	return &snsSender{
		client:   client,
		smsType:  smsType,
		senderID: senderID,
		logger:   logger,
	}
}

func (s *snsSender) SendSMS(ctx context.Context, phone, message string) (string, error) {
	input := &sns.PublishInput{
		PhoneNumber:       aws.String(phone),
		Message:           aws.String(message),
		MessageAttributes: s.messageAttributes(),
	}

	out, err := s.client.Publish(ctx, input)
	if err != nil {
		return "", errors.Wrap(err, "sns publish")
	}

	messageID := aws.ToString(out.MessageId)
	s.logger.DebugContext(ctx, "[SNS] SMS published",
		slog.String("user", util.MaskPhone(phone)),
		slog.String("message_id", messageID),
	)

	return messageID, nil
}

func (s *snsSender) messageAttributes() map[string]types.MessageAttributeValue {
	attrs := make(map[string]types.MessageAttributeValue)
	if s.smsType != "" {
		attrs[snsAttrSMSType] = stringAttribute(s.smsType)
	}
	if s.senderID != "" {
		attrs[snsAttrSenderID] = stringAttribute(s.senderID)
	}
	if len(attrs) == 0 {
		return nil
	}

	return attrs
}

func stringAttribute(value string) types.MessageAttributeValue {
	return types.MessageAttributeValue{
		DataType:    aws.String("String"),
		StringValue: aws.String(value),
	}
}

func (s *snsSender) Close() error {
	return nil
}
