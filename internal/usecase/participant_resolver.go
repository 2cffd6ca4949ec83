package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/metrics"
	"github.com/sourcegraph/conc/pool"
)

// MaxParticipantBatch is the upstream limit for one by-ids lookup.
const MaxParticipantBatch = 40

type ParticipantResolverConfig struct {
	MaxBatch    int
	Concurrency int
}

// ParticipantResolver makes sure every given opaque id has an identity row,
// fetching only the missing ones in capped batches.
type ParticipantResolver struct {
	repo        summoner.Repository
	provider    RiotProvider
	maxBatch    int
	concurrency int
	now         func() time.Time
	logger      *logging.Logger
	metrics     *metrics.Metrics
}

func NewParticipantResolver(
	repo summoner.Repository,
	provider RiotProvider,
	cfg ParticipantResolverConfig,
	logger *logging.Logger,
	m *metrics.Metrics,
) *ParticipantResolver {
	if logger == nil {
		logger = logging.Default()
	}
	maxBatch := cfg.MaxBatch
	if maxBatch <= 0 || maxBatch > MaxParticipantBatch {
		maxBatch = MaxParticipantBatch
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &ParticipantResolver{
		repo:        repo,
		provider:    provider,
		maxBatch:    maxBatch,
		concurrency: concurrency,
		now:         time.Now,
		logger:      logger,
		metrics:     m,
	}
}

func (r *ParticipantResolver) WithClock(now func() time.Time) *ParticipantResolver {
	if now != nil {
		r.now = now
	}
	return r
}

func (r *ParticipantResolver) EnsureCached(ctx context.Context, ids []int64, reg string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ParticipantResolver.EnsureCached")
	defer span.End()

	wanted := uniquePositiveIDs(ids)
	if len(wanted) == 0 {
		return nil
	}

	known, err := r.repo.ListBySummonerIDs(ctx, reg, wanted)
	if err != nil {
		return fmt.Errorf("list cached summoners region=%s: %w", reg, err)
	}
	cached := make(map[int64]struct{}, len(known))
	for _, s := range known {
		cached[s.SummonerID] = struct{}{}
	}

	missing := make([]int64, 0, len(wanted))
	for _, id := range wanted {
		if _, ok := cached[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if r.provider == nil {
		return fmt.Errorf("%w: riot provider is not configured", ErrDependencyUnavailable)
	}

	var inserted, duplicates atomic.Int32
	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(r.concurrency)

	for start := 0; start < len(missing); start += r.maxBatch {
		end := min(start+r.maxBatch, len(missing))
		batch := missing[start:end]

		p.Go(func(ctx context.Context) error {
			profiles, err := r.provider.FetchSummonersByIDs(ctx, reg, batch)
			if err != nil {
				return fmt.Errorf("fetch participants region=%s batch=%d: %w", reg, len(batch), err)
			}

			now := r.now()
			for _, profile := range profiles {
				item := applyExternalSummoner(summoner.Summoner{Region: reg}, profile, now)
				if err := r.repo.Create(ctx, &item); err != nil {
					if errors.Is(err, ErrDuplicateKey) {
						duplicates.Add(1)
						continue
					}
					return fmt.Errorf("create participant region=%s summoner_id=%d: %w", reg, item.SummonerID, err)
				}
				inserted.Add(1)
			}
			return nil
		})
	}

	err = p.Wait()
	r.metrics.ParticipantsCached(int(inserted.Load()), int(duplicates.Load()))
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "participants cached",
		"region", reg,
		"requested", len(wanted),
		"missing", len(missing),
		"inserted", inserted.Load(),
		"duplicates", duplicates.Load(),
	)
	return nil
}

// uniquePositiveIDs drops non-positive ids and duplicates and returns the
// rest sorted ascending.
func uniquePositiveIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
