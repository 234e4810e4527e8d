package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"chainflow/internal/chain"
	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

// ErrInternal marks a failure of the tool itself rather than of a chain.
var ErrInternal = errors.New("internal tool error")

// Engine resolves members concurrently and collects a Report.
type Engine struct {
	resolver *chain.Resolver
	config   Config
	logger   *slog.Logger
}

// New creates an Engine. The oracle is wrapped in a cache when cfg.Memoize
// is set. A nil logger discards all records.
func New(oracle match.Oracle, cfg Config, logger *slog.Logger) *Engine {
	if cfg.Memoize && oracle != nil {
		oracle = match.Memoize(oracle)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		resolver: chain.NewResolver(oracle),
		config:   cfg,
		logger:   logger,
	}
}

// Analyze resolves every chain of every member. The returned error is non-nil
// only when ctx is cancelled.
func (e *Engine) Analyze(ctx context.Context, members []typeflow.Member) (*Report, error) {
	start := time.Now()
	results := make([]MemberReport, len(members))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.workers())

	for i, m := range members {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = e.resolveMember(m)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}

	report := newReport(results)

	e.logger.Info("analysis complete",
		slog.Int("members", len(members)),
		slog.Int("errors", len(report.Diagnostics.Errors)),
		slog.Int("workers", e.config.workers()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return report, nil
}

// resolveMember never panics; a recovered panic becomes an internal error
// resolution covering the whole member.
func (e *Engine) resolveMember(m typeflow.Member) (rep MemberReport) {
	rep = MemberReport{Name: m.Name, Type: m.Type}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: resolving %s: %v", ErrInternal, m.Name, r)

			e.logger.Error("member resolution panicked", slog.String("member", m.Name), slog.Any("panic", r))

			rep.Chains = []chain.ChainResolution{{Resolution: chain.InternalError(err)}}
		}
	}()

	rep.Chains = e.resolver.ResolveMember(m)

	for _, c := range rep.Chains {
		e.logger.Debug("chain resolved",
			slog.String("member", m.Name),
			slog.String("group", c.GroupKey),
			slog.String("outcome", c.Resolution.Kind.String()),
		)
	}

	return rep
}
