// Package breach talks to a k-anonymity breach corpus such as Pwned Passwords.
package breach

import (
	"context"
	"io"
	"net/http"
	"time"

	"breachcheck/config"
	"breachcheck/internal/domain/entity"
	"breachcheck/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	rangePath = "/range/"

	// A padded range is roughly 1000 lines of 40 bytes.
	maxRangeBodySize = 1 << 20
)

// ErrRangeTooLarge is returned when the range body exceeds maxRangeBodySize.
var ErrRangeTooLarge = errors.New("range body exceeds size limit")

// ErrInvalidPrefix is returned before any network I/O when the prefix is malformed.
var ErrInvalidPrefix = errors.New("range prefix must be five uppercase hex characters")

type rangeClient struct {
	baseURL    string
	userAgent  string
	addPadding bool
	timeout    time.Duration
	httpClient *http.Client
}

// NewRangeClient creates a range API client for the configured corpus
func NewRangeClient(cfg *config.Config) service.BreachCorpus {
	return newRangeClient(cfg.BreachCorpus, &http.Client{Timeout: cfg.BreachCorpus.Timeout})
}

func newRangeClient(cfg *config.BreachCorpusConfig, httpClient *http.Client) *rangeClient {
	return &rangeClient{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		addPadding: cfg.AddPadding,
		timeout:    cfg.Timeout,
		httpClient: httpClient,
	}
}

// Range fetches every known suffix sharing prefix
func (c *rangeClient) Range(ctx context.Context, prefix string) (string, error) {
	if !entity.IsRangePrefix(prefix) {
		return "", errors.WithStack(ErrInvalidPrefix)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+rangePath+prefix, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Accept", "text/plain")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.addPadding {
		req.Header.Set("Add-Padding", "true")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "range request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("range request returned non-success status: %d", resp.StatusCode)
	}

	// One extra byte tells a full body from a truncated one; a cut-off
	// record could carry a wrong count.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRangeBodySize+1))
	if err != nil {
		return "", errors.Wrap(err, "read range body")
	}
	if len(body) > maxRangeBodySize {
		return "", errors.WithStack(ErrRangeTooLarge)
	}

	return string(body), nil
}
