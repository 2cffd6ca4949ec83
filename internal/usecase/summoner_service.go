package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/region"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/metrics"
)

type ResolveOutcome string

const (
	ResolveFresh   ResolveOutcome = "fresh"
	ResolveStale   ResolveOutcome = "stale"
	ResolveCreated ResolveOutcome = "created"
)

// Refreshed reports whether the identity was just written from upstream,
// which is the caller's cue to run the downstream sync.
func (o ResolveOutcome) Refreshed() bool {
	return o == ResolveStale || o == ResolveCreated
}

type ResolveResult struct {
	Summoner summoner.Summoner
	Outcome  ResolveOutcome
}

// SummonerService is the identity cache in front of the upstream by-name
// lookup.
type SummonerService struct {
	repo     summoner.Repository
	provider RiotProvider
	ttl      time.Duration
	now      func() time.Time
	logger   *logging.Logger
	metrics  *metrics.Metrics
}

func NewSummonerService(
	repo summoner.Repository,
	provider RiotProvider,
	ttl time.Duration,
	logger *logging.Logger,
	m *metrics.Metrics,
) *SummonerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SummonerService{
		repo:     repo,
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
		metrics:  m,
	}
}

// WithClock swaps the time source used for freshness checks.
func (s *SummonerService) WithClock(now func() time.Time) *SummonerService {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *SummonerService) Resolve(ctx context.Context, name, rawRegion string) (ResolveResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummonerService.Resolve")
	defer span.End()

	reg, normalized, err := parseSummonerKey(name, rawRegion)
	if err != nil {
		return ResolveResult{}, err
	}

	cached, found, err := s.repo.GetByNormalizedName(ctx, reg, normalized)
	if err != nil {
		return ResolveResult{}, fmt.Errorf("get summoner region=%s name=%s: %w", reg, normalized, err)
	}

	now := s.now()
	if found && cached.FreshAt(now, s.ttl) {
		s.metrics.SummonerLookup(string(ResolveFresh))
		s.logger.DebugContext(ctx, "summoner cache hit", "region", reg, "name", normalized)
		return ResolveResult{Summoner: cached, Outcome: ResolveFresh}, nil
	}

	if s.provider == nil {
		return ResolveResult{}, fmt.Errorf("%w: riot provider is not configured", ErrDependencyUnavailable)
	}

	remote, err := s.provider.FetchSummonerByName(ctx, reg, normalized)
	if err != nil {
		return ResolveResult{}, fmt.Errorf("fetch summoner region=%s name=%s: %w", reg, normalized, err)
	}

	if found {
		updated := applyExternalSummoner(cached, remote, now)
		if err := s.repo.Update(ctx, updated); err != nil {
			if !errors.Is(err, ErrDuplicateKey) {
				return ResolveResult{}, fmt.Errorf("update summoner id=%d: %w", cached.ID, err)
			}
			// The new opaque id already belongs to another row. That row is the
			// identity the name points to now.
			if updated, err = s.refreshBySummonerID(ctx, reg, remote, now); err != nil {
				return ResolveResult{}, err
			}
		}
		s.metrics.SummonerLookup(string(ResolveStale))
		s.logger.InfoContext(ctx, "summoner cache refreshed", "region", reg, "name", normalized, "summoner_id", updated.SummonerID)
		return ResolveResult{Summoner: updated, Outcome: ResolveStale}, nil
	}

	created := applyExternalSummoner(summoner.Summoner{Region: reg}, remote, now)
	if err := s.repo.Create(ctx, &created); err != nil {
		if !errors.Is(err, ErrDuplicateKey) {
			return ResolveResult{}, fmt.Errorf("create summoner region=%s summoner_id=%d: %w", reg, created.SummonerID, err)
		}
		// Either a concurrent resolve inserted the identity first or it is
		// cached under an older name.
		if created, err = s.refreshBySummonerID(ctx, reg, remote, now); err != nil {
			return ResolveResult{}, err
		}
	}

	s.metrics.SummonerLookup(string(ResolveCreated))
	s.logger.InfoContext(ctx, "summoner cached", "region", reg, "name", normalized, "summoner_id", created.SummonerID)
	return ResolveResult{Summoner: created, Outcome: ResolveCreated}, nil
}

// refreshBySummonerID overwrites the row holding remote's opaque id with the
// upstream profile.
func (s *SummonerService) refreshBySummonerID(ctx context.Context, reg string, remote ExternalSummoner, now time.Time) (summoner.Summoner, error) {
	stored, ok, err := s.repo.GetBySummonerID(ctx, reg, remote.SummonerID)
	if err != nil {
		return summoner.Summoner{}, fmt.Errorf("reload summoner region=%s summoner_id=%d: %w", reg, remote.SummonerID, err)
	}
	if !ok {
		return summoner.Summoner{}, fmt.Errorf("reload summoner region=%s summoner_id=%d: row vanished after duplicate key", reg, remote.SummonerID)
	}

	updated := applyExternalSummoner(stored, remote, now)
	if err := s.repo.Update(ctx, updated); err != nil {
		return summoner.Summoner{}, fmt.Errorf("update summoner id=%d: %w", stored.ID, err)
	}
	return updated, nil
}

// Get reads the local cache only.
func (s *SummonerService) Get(ctx context.Context, rawRegion, name string) (summoner.Summoner, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummonerService.Get")
	defer span.End()

	reg, normalized, err := parseSummonerKey(name, rawRegion)
	if err != nil {
		return summoner.Summoner{}, err
	}

	item, found, err := s.repo.GetByNormalizedName(ctx, reg, normalized)
	if err != nil {
		return summoner.Summoner{}, fmt.Errorf("get summoner region=%s name=%s: %w", reg, normalized, err)
	}
	if !found {
		return summoner.Summoner{}, fmt.Errorf("%w: summoner region=%s name=%s", ErrNotFound, reg, normalized)
	}
	return item, nil
}

func (s *SummonerService) List(ctx context.Context, filter summoner.Filter) ([]summoner.Summoner, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummonerService.List")
	defer span.End()

	if filter.Region != "" {
		reg, err := parseRegion(filter.Region)
		if err != nil {
			return nil, err
		}
		filter.Region = reg
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list summoners: %w", err)
	}
	return items, nil
}

func applyExternalSummoner(dst summoner.Summoner, src ExternalSummoner, now time.Time) summoner.Summoner {
	dst.SummonerID = src.SummonerID
	dst.Name = src.Name
	dst.NormalizedName = summoner.NormalizeName(src.Name)
	dst.ProfileIconID = src.ProfileIconID
	dst.SummonerLevel = src.SummonerLevel
	dst.RevisionDate = src.RevisionDate
	dst.LastSyncedAt = now
	return dst
}

func parseRegion(raw string) (string, error) {
	reg, err := region.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return reg, nil
}

func parseSummonerKey(name, rawRegion string) (string, string, error) {
	reg, err := parseRegion(rawRegion)
	if err != nil {
		return "", "", err
	}
	normalized := summoner.NormalizeName(strings.TrimSpace(name))
	if normalized == "" {
		return "", "", fmt.Errorf("%w: summoner name is required", ErrInvalidInput)
	}
	return reg, normalized, nil
}
