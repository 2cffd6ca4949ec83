package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
)

// CatalogRepository keeps each catalog as an ordered slice; Replace* swaps
// the slice under the write lock.
type CatalogRepository struct {
	mu        sync.RWMutex
	champions []catalog.Champion
	items     []catalog.Item
	spells    []catalog.SummonerSpell
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) ReplaceChampions(_ context.Context, items []catalog.Champion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.champions = append([]catalog.Champion(nil), items...)
	return nil
}

func (r *CatalogRepository) ReplaceItems(_ context.Context, items []catalog.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]catalog.Item(nil), items...)
	return nil
}

func (r *CatalogRepository) ReplaceSummonerSpells(_ context.Context, items []catalog.SummonerSpell) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spells = append([]catalog.SummonerSpell(nil), items...)
	return nil
}

func (r *CatalogRepository) ListChampions(_ context.Context) ([]catalog.Champion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.Champion(nil), r.champions...), nil
}

func (r *CatalogRepository) ListItems(_ context.Context) ([]catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.Item(nil), r.items...), nil
}

func (r *CatalogRepository) ListSummonerSpells(_ context.Context) ([]catalog.SummonerSpell, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.SummonerSpell(nil), r.spells...), nil
}

func (r *CatalogRepository) ListChampionsByIDs(_ context.Context, ids []int) ([]catalog.Champion, error) {
	want := intSet(ids)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Champion, 0, len(ids))
	for _, c := range r.champions {
		if _, ok := want[c.ChampionID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CatalogRepository) ListSummonerSpellsByIDs(_ context.Context, ids []int) ([]catalog.SummonerSpell, error) {
	want := intSet(ids)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.SummonerSpell, 0, len(ids))
	for _, s := range r.spells {
		if _, ok := want[s.SpellID]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *CatalogRepository) GetChampionByName(_ context.Context, name string) (catalog.Champion, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.champions {
		if strings.EqualFold(c.Name, name) {
			return c, true, nil
		}
	}
	return catalog.Champion{}, false, nil
}

func (r *CatalogRepository) GetItemByName(_ context.Context, name string) (catalog.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if strings.EqualFold(it.Name, name) {
			return it, true, nil
		}
	}
	return catalog.Item{}, false, nil
}

func (r *CatalogRepository) GetSummonerSpellByName(_ context.Context, name string) (catalog.SummonerSpell, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.spells {
		if strings.EqualFold(s.Name, name) {
			return s, true, nil
		}
	}
	return catalog.SummonerSpell{}, false, nil
}

func intSet(ids []int) map[int]struct{} {
	out := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
