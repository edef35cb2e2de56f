package notification

import (
	"context"
	"encoding/json"
	"testing"

	deliverycontext "breachcheck/internal/delivery/context"
	"breachcheck/internal/domain/service"

	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newFakePubSub(t *testing.T) (*pstest.Server, option.ClientOption) {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return srv, option.WithGRPCConn(conn)
}

func TestPubSubSender_SendSMS(t *testing.T) {
	ctx := context.Background()
	srv, conn := newFakePubSub(t)
	_, err := srv.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: "projects/breachcheck/topics/sms"})
	require.NoError(t, err)

	sender, err := NewPubSubSender(ctx, "breachcheck", "sms", discardLogger(), conn)
	require.NoError(t, err)
	defer sender.Close()

	messageID, err := sender.SendSMS(deliverycontext.WithRequestID(ctx, "req-7"), "+15551234567", "Hello Carol.")
	require.NoError(t, err)
	assert.NotEmpty(t, messageID)

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "req-7", msgs[0].Attributes["request_id"])

	var job service.SMSJob
	require.NoError(t, json.Unmarshal(msgs[0].Data, &job))
	assert.Equal(t, service.SMSJob{RequestID: "req-7", Phone: "+15551234567", Message: "Hello Carol."}, job)
}

func TestNewPubSubSender_MissingTopic(t *testing.T) {
	_, conn := newFakePubSub(t)

	_, err := NewPubSubSender(context.Background(), "breachcheck", "absent", discardLogger(), conn)

	assert.ErrorContains(t, err, "failed to get topic absent")
}
