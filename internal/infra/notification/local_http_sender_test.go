package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "breachcheck/internal/delivery/context"
	"breachcheck/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPSender_SendSMS(t *testing.T) {
	var received service.SMSJob
	var headerRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		headerRequestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := NewLocalHTTPSender(srv.URL, discardLogger())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	messageID, err := sender.SendSMS(ctx, "+15551234567", "Hello Bob.")

	require.NoError(t, err)
	assert.NotEmpty(t, messageID)
	assert.Equal(t, service.SMSJob{RequestID: "req-42", Phone: "+15551234567", Message: "Hello Bob."}, received)
	assert.Equal(t, "req-42", headerRequestID)
}

func TestLocalHTTPSender_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := NewLocalHTTPSender(srv.URL, discardLogger())

	_, err := sender.SendSMS(context.Background(), "+15551234567", "msg")

	assert.ErrorContains(t, err, "502")
}

func TestLocalHTTPSender_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	_, err := NewLocalHTTPSender(endpoint, discardLogger()).SendSMS(context.Background(), "+1", "msg")

	assert.Error(t, err)
}
