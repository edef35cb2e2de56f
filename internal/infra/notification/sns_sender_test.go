package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNSPublishAPI struct {
	inputs []*sns.PublishInput
	err    error
}

func (f *fakeSNSPublishAPI) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}

	return &sns.PublishOutput{MessageId: aws.String("sns-message-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSNSSender_SendSMS(t *testing.T) {
	api := &fakeSNSPublishAPI{}
	sender := NewSNSSender(api, "", "", discardLogger())

	messageID, err := sender.SendSMS(context.Background(), "+15551234567", "Hello Alice.")

	require.NoError(t, err)
	assert.Equal(t, "sns-message-1", messageID)
	require.Len(t, api.inputs, 1)
	assert.Equal(t, "+15551234567", aws.ToString(api.inputs[0].PhoneNumber))
	assert.Equal(t, "Hello Alice.", aws.ToString(api.inputs[0].Message))
	assert.Nil(t, api.inputs[0].MessageAttributes)
	assert.Nil(t, api.inputs[0].TopicArn)
}

func TestSNSSender_MessageAttributes(t *testing.T) {
	api := &fakeSNSPublishAPI{}
	sender := NewSNSSender(api, "Transactional", "BREACHCHK", discardLogger())

	_, err := sender.SendSMS(context.Background(), "+15551234567", "msg")
	require.NoError(t, err)

	attrs := api.inputs[0].MessageAttributes
	require.Len(t, attrs, 2)
	assert.Equal(t, types.MessageAttributeValue{
		DataType:    aws.String("String"),
		StringValue: aws.String("Transactional"),
	}, attrs[snsAttrSMSType])
	assert.Equal(t, "BREACHCHK", aws.ToString(attrs[snsAttrSenderID].StringValue))
}

func TestSNSSender_PublishError(t *testing.T) {
	api := &fakeSNSPublishAPI{err: errors.New("InvalidParameter: PhoneNumber")}
	sender := NewSNSSender(api, "", "", discardLogger())

	messageID, err := sender.SendSMS(context.Background(), "12345", "msg")

	assert.Empty(t, messageID)
	assert.ErrorContains(t, err, "sns publish")
	assert.NoError(t, sender.Close())
}
