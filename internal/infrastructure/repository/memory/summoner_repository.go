package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/storage"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
)

type SummonerRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]summoner.Summoner
}

func NewSummonerRepository(seed ...summoner.Summoner) *SummonerRepository {
	r := &SummonerRepository{items: make(map[int64]summoner.Summoner, len(seed))}
	for _, s := range seed {
		item := s
		_ = r.Create(context.Background(), &item)
	}
	return r
}

func (r *SummonerRepository) GetByNormalizedName(_ context.Context, region, normalizedName string) (summoner.Summoner, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best  summoner.Summoner
		found bool
	)
	for _, s := range r.items {
		if s.Region != region || s.NormalizedName != normalizedName {
			continue
		}
		if !found || s.LastSyncedAt.After(best.LastSyncedAt) ||
			(s.LastSyncedAt.Equal(best.LastSyncedAt) && s.ID > best.ID) {
			best = s
			found = true
		}
	}
	return best, found, nil
}

func (r *SummonerRepository) GetBySummonerID(_ context.Context, region string, summonerID int64) (summoner.Summoner, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.findByKeyLocked(region, summonerID)
	if !ok {
		return summoner.Summoner{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *SummonerRepository) ListBySummonerIDs(_ context.Context, region string, summonerIDs []int64) ([]summoner.Summoner, error) {
	if len(summonerIDs) == 0 {
		return nil, nil
	}

	want := make(map[int64]struct{}, len(summonerIDs))
	for _, id := range summonerIDs {
		want[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]summoner.Summoner, 0, len(summonerIDs))
	for _, s := range r.items {
		if s.Region != region {
			continue
		}
		if _, ok := want[s.SummonerID]; ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SummonerID < out[j].SummonerID })
	return out, nil
}

func (r *SummonerRepository) List(_ context.Context, filter summoner.Filter) ([]summoner.Summoner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]summoner.Summoner, 0, len(r.items))
	for _, s := range r.items {
		if filter.Region != "" && s.Region != filter.Region {
			continue
		}
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})

	start, end := pageBounds(len(all), filter.Page, filter.PageSize)
	return append([]summoner.Summoner(nil), all[start:end]...), nil
}

func (r *SummonerRepository) Create(_ context.Context, item *summoner.Summoner) error {
	if item == nil {
		return fmt.Errorf("summoner is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.findByKeyLocked(item.Region, item.SummonerID); exists {
		return fmt.Errorf("insert summoner summoner_id=%d region=%s: %w", item.SummonerID, item.Region, storage.ErrDuplicateKey)
	}
	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = *item
	return nil
}

func (r *SummonerRepository) Update(_ context.Context, item summoner.Summoner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[item.ID]
	if !ok {
		return fmt.Errorf("update summoner id=%d: no rows affected", item.ID)
	}
	if other, exists := r.findByKeyLocked(current.Region, item.SummonerID); exists && other != item.ID {
		return fmt.Errorf("update summoner id=%d: %w", item.ID, storage.ErrDuplicateKey)
	}
	item.Region = current.Region
	r.items[item.ID] = item
	return nil
}

func (r *SummonerRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[int64]summoner.Summoner)
	return nil
}

func (r *SummonerRepository) findByKeyLocked(region string, summonerID int64) (int64, bool) {
	for id, s := range r.items {
		if s.Region == region && s.SummonerID == summonerID {
			return id, true
		}
	}
	return 0, false
}
