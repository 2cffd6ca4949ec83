package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/metrics"
)

// CatalogService keeps the champion, item and summoner spell tables in step
// with the static data endpoints.
type CatalogService struct {
	repo     catalog.Repository
	provider RiotProvider
	logger   *logging.Logger
	metrics  *metrics.Metrics
}

func NewCatalogService(repo catalog.Repository, provider RiotProvider, logger *logging.Logger, m *metrics.Metrics) *CatalogService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CatalogService{repo: repo, provider: provider, logger: logger, metrics: m}
}

func (s *CatalogService) RefreshChampions(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.RefreshChampions")
	defer span.End()

	if err := s.ensureProvider(); err != nil {
		return 0, err
	}
	items, err := s.provider.FetchChampions(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch champions: %w", err)
	}
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: upstream returned no champions", ErrUpstreamUnavailable)
	}
	if err := s.repo.ReplaceChampions(ctx, items); err != nil {
		return 0, fmt.Errorf("replace champions: %w", err)
	}

	s.metrics.CatalogRefreshed("champion", len(items))
	s.logger.InfoContext(ctx, "champions refreshed", "count", len(items))
	return len(items), nil
}

func (s *CatalogService) RefreshItems(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.RefreshItems")
	defer span.End()

	if err := s.ensureProvider(); err != nil {
		return 0, err
	}
	items, err := s.provider.FetchItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch items: %w", err)
	}
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: upstream returned no items", ErrUpstreamUnavailable)
	}
	if err := s.repo.ReplaceItems(ctx, items); err != nil {
		return 0, fmt.Errorf("replace items: %w", err)
	}

	s.metrics.CatalogRefreshed("item", len(items))
	s.logger.InfoContext(ctx, "items refreshed", "count", len(items))
	return len(items), nil
}

func (s *CatalogService) RefreshSummonerSpells(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.RefreshSummonerSpells")
	defer span.End()

	if err := s.ensureProvider(); err != nil {
		return 0, err
	}
	items, err := s.provider.FetchSummonerSpells(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch summoner spells: %w", err)
	}
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: upstream returned no summoner spells", ErrUpstreamUnavailable)
	}
	if err := s.repo.ReplaceSummonerSpells(ctx, items); err != nil {
		return 0, fmt.Errorf("replace summoner spells: %w", err)
	}

	s.metrics.CatalogRefreshed("summoner_spell", len(items))
	s.logger.InfoContext(ctx, "summoner spells refreshed", "count", len(items))
	return len(items), nil
}

// RefreshAll must have run at least once before match ingestion can succeed.
func (s *CatalogService) RefreshAll(ctx context.Context) (catalog.RefreshResult, error) {
	var (
		result catalog.RefreshResult
		err    error
	)
	if result.Champions, err = s.RefreshChampions(ctx); err != nil {
		return result, err
	}
	if result.Items, err = s.RefreshItems(ctx); err != nil {
		return result, err
	}
	if result.SummonerSpells, err = s.RefreshSummonerSpells(ctx); err != nil {
		return result, err
	}
	return result, nil
}

func (s *CatalogService) ListChampions(ctx context.Context) ([]catalog.Champion, error) {
	items, err := s.repo.ListChampions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list champions: %w", err)
	}
	return items, nil
}

func (s *CatalogService) ListItems(ctx context.Context) ([]catalog.Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *CatalogService) ListSummonerSpells(ctx context.Context) ([]catalog.SummonerSpell, error) {
	items, err := s.repo.ListSummonerSpells(ctx)
	if err != nil {
		return nil, fmt.Errorf("list summoner spells: %w", err)
	}
	return items, nil
}

func (s *CatalogService) GetChampionByName(ctx context.Context, name string) (catalog.Champion, error) {
	name, err := catalogName(name)
	if err != nil {
		return catalog.Champion{}, err
	}
	item, found, err := s.repo.GetChampionByName(ctx, name)
	if err != nil {
		return catalog.Champion{}, fmt.Errorf("get champion name=%s: %w", name, err)
	}
	if !found {
		return catalog.Champion{}, fmt.Errorf("%w: champion name=%s", ErrNotFound, name)
	}
	return item, nil
}

func (s *CatalogService) GetItemByName(ctx context.Context, name string) (catalog.Item, error) {
	name, err := catalogName(name)
	if err != nil {
		return catalog.Item{}, err
	}
	item, found, err := s.repo.GetItemByName(ctx, name)
	if err != nil {
		return catalog.Item{}, fmt.Errorf("get item name=%s: %w", name, err)
	}
	if !found {
		return catalog.Item{}, fmt.Errorf("%w: item name=%s", ErrNotFound, name)
	}
	return item, nil
}

func (s *CatalogService) GetSummonerSpellByName(ctx context.Context, name string) (catalog.SummonerSpell, error) {
	name, err := catalogName(name)
	if err != nil {
		return catalog.SummonerSpell{}, err
	}
	item, found, err := s.repo.GetSummonerSpellByName(ctx, name)
	if err != nil {
		return catalog.SummonerSpell{}, fmt.Errorf("get summoner spell name=%s: %w", name, err)
	}
	if !found {
		return catalog.SummonerSpell{}, fmt.Errorf("%w: summoner spell name=%s", ErrNotFound, name)
	}
	return item, nil
}

func (s *CatalogService) ensureProvider() error {
	if s.provider == nil {
		return fmt.Errorf("%w: riot provider is not configured", ErrDependencyUnavailable)
	}
	return nil
}

func catalogName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return name, nil
}
