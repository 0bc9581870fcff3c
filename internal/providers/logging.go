package providers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
)

// logCall reports the outcome of one upstream call. Successes log at debug;
// rate limits carry the retry hint.
func logCall(ctx context.Context, logger *slog.Logger, provider, endpoint string, err error, args ...any) {
	if logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, provider),
		slog.String(logging.FieldEndpoint, endpoint),
	)

	if err == nil {
		logger.Log(ctx, slog.LevelDebug, "provider fetch", args...)
		return
	}
	if errors.Is(err, ErrProviderUnavailable) {
		logger.Log(ctx, slog.LevelWarn, "provider unavailable", args...)
		return
	}
	args = append(args, slog.Any("error", err))
	if rl, ok := AsRateLimitError(err); ok {
		args = append(args, slog.Duration("retry_after", rl.RetryAfter))
		logger.Log(ctx, slog.LevelWarn, "provider rate limited", args...)
		return
	}
	logger.Log(ctx, slog.LevelWarn, "provider fetch failed", args...)
}
