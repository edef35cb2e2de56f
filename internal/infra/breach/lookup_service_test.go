package breach

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"breachcheck/internal/domain/entity"
	mockSvc "breachcheck/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const password123Suffix = "C6008F9CAB4083784CBD1874F76618D2A97"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMatchSuffix(t *testing.T) {
	tests := []struct {
		name string
		body string
		want entity.BreachLookupResult
	}{
		{
			name: "match with CRLF",
			body: "0018A45C4D1DEF81644B54AB7F969B88D65:1\r\n" + password123Suffix + ":5331\r\n00D4F6E8FA6EECAD2A3AA415EEC418D38EC:2\r\n",
			want: entity.BreachLookupResult{IsBreached: true, BreachCount: 5331},
		},
		{
			name: "first match wins",
			body: password123Suffix + ":7\n" + password123Suffix + ":9\n",
			want: entity.BreachLookupResult{IsBreached: true, BreachCount: 7},
		},
		{
			name: "no match",
			body: "0018A45C4D1DEF81644B54AB7F969B88D65:1\n00D4F6E8FA6EECAD2A3AA415EEC418D38EC:2\n",
			want: entity.BreachLookupResult{},
		},
		{
			name: "empty",
			body: "",
			want: entity.BreachLookupResult{},
		},
		{
			name: "lowercase suffix does not match",
			body: "c6008f9cab4083784cbd1874f76618d2a97:10\n",
			want: entity.BreachLookupResult{},
		},
		{
			name: "malformed lines skipped",
			body: "garbage\n" + password123Suffix + ":notanumber\n" + password123Suffix + ":12\n",
			want: entity.BreachLookupResult{IsBreached: true, BreachCount: 12},
		},
		{
			name: "over-long line before match",
			body: strings.Repeat("A", 70*1024) + ":1\n" + password123Suffix + ":5331\n",
			want: entity.BreachLookupResult{IsBreached: true, BreachCount: 5331},
		},
		{
			name: "match on last line without newline",
			body: "0018A45C4D1DEF81644B54AB7F969B88D65:1\n" + password123Suffix + ":3",
			want: entity.BreachLookupResult{IsBreached: true, BreachCount: 3},
		},
		{
			name: "padding entry",
			body: password123Suffix + ":0\n",
			want: entity.BreachLookupResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchSuffix(tt.body, password123Suffix))
		})
	}
}

func TestLookupService_Breached(t *testing.T) {
	ctx := context.Background()
	corpus := mockSvc.NewMockBreachCorpus(t)
	digest := entity.NewPasswordDigest("password123")

	corpus.EXPECT().Range(ctx, "CBFDA").Return(password123Suffix+":5331\r\n", nil)

	result := NewLookupService(corpus, discardLogger()).Lookup(ctx, digest)

	assert.Equal(t, entity.BreachLookupResult{IsBreached: true, BreachCount: 5331}, result)
}

func TestLookupService_CorpusFailureDegradesToSafe(t *testing.T) {
	ctx := context.Background()
	corpus := mockSvc.NewMockBreachCorpus(t)
	digest := entity.NewPasswordDigest("password123")

	corpus.EXPECT().Range(ctx, "CBFDA").Return("", errors.New("dial tcp: i/o timeout"))

	result := NewLookupService(corpus, discardLogger()).Lookup(ctx, digest)

	assert.Equal(t, entity.BreachLookupResult{}, result)
	assert.Equal(t, entity.BreachStatusSafe, result.Status())
}
