package breach

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "breachcheck/internal/delivery/context"
	"breachcheck/internal/domain/entity"
	"breachcheck/internal/domain/service"
)

type lookupService struct {
	corpus service.BreachCorpus
	logger *slog.Logger
}

// NewLookupService wraps a corpus with the availability-first failure policy
func NewLookupService(corpus service.BreachCorpus, logger *slog.Logger) service.BreachLookupService {
	return &lookupService{
		corpus: corpus,
		logger: logger,
	}
}

// Lookup queries the corpus by prefix and scans for the suffix.
//
// A failed range request is treated as an empty range, so an outage reads as
// "Safe". That is a known false-negative: unknown is reported as not breached.
func (s *lookupService) Lookup(ctx context.Context, digest entity.PasswordDigest) entity.BreachLookupResult {
	body, err := s.corpus.Range(ctx, digest.Prefix)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Breach corpus unavailable, treating range as empty",
			slog.String("prefix", digest.Prefix),
			slog.Any("error", err),
		)

		return entity.BreachLookupResult{}
	}

	return MatchSuffix(body, digest.Suffix)
}

// MatchSuffix scans "SUFFIX:COUNT" lines and returns the first record whose
// suffix equals suffix exactly. Malformed lines of any length are skipped. A
// match with a zero count is a padding entry and reads as not breached.
func MatchSuffix(body, suffix string) entity.BreachLookupResult {
	for line := range strings.Lines(body) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		candidate, rawCount, ok := strings.Cut(line, ":")
		if !ok || candidate != suffix {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(rawCount))
		if err != nil || count < 0 {
			continue
		}

		return entity.BreachLookupResult{
			IsBreached:  count > 0,
			BreachCount: count,
		}
	}

	return entity.BreachLookupResult{}
}
