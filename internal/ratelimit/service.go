package ratelimit

import (
	"context"
	"fmt"
	"time"

	"marketing-server/internal/observability"

	"github.com/google/uuid"
)

const window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Window is a sliding log of request times per key. WindowHit must check and record in one atomic
// step: it records member at now only when fewer than limit hits fall inside the window, and
// returns whether it did, the resulting hit count and the oldest hit still in the window.
type Window interface {
	WindowHit(ctx context.Context, key, member string, now time.Time, window time.Duration, limit int64) (bool, int64, time.Time, error)
}

// Service limits how often a user may call an endpoint within a one minute sliding window
type Service struct {
	window Window
	scope  string
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a rate limiter for scope allowing limit requests per minute per user.
// A non-positive limit allows everything.
func NewService(window Window, scope string, limit int, logger *observability.Logger) *Service {
	return &Service{
		window: window,
		scope:  scope,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

// CheckRateLimit records a request for userID and reports whether it is within the limit.
// Requests that are rejected are not recorded.
func (s *Service) CheckRateLimit(ctx context.Context, userID uuid.UUID) (RateLimitResult, error) {
	now := s.now()
	if s.limit <= 0 {
		return RateLimitResult{Allowed: true, ResetAt: now}, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_scope", Value: s.scope},
		observability.Field{Key: "rate_limit", Value: s.limit},
	)

	key := fmt.Sprintf("rl:%s:%s", s.scope, userID)
	member := fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString())
	allowed, count, oldest, err := s.window.WindowHit(ctx, key, member, now, window, int64(s.limit))
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to record request: %w", err)
	}

	if !allowed {
		resetAt := now.Add(window)
		if !oldest.IsZero() {
			resetAt = oldest.Add(window)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	remaining := s.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: remaining,
		ResetAt:   now.Add(window),
	}, nil
}
