package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	basecache "github.com/riskibarqy/lol-stats-sync/internal/platform/cache"
)

const catalogKeyPrefix = "catalog:"

// CatalogRepository serves catalog reads from an in-process cache. Any
// Replace* call drops every cached catalog key once the write succeeds.
type CatalogRepository struct {
	next  catalog.Repository
	cache *basecache.Store
}

func NewCatalogRepository(next catalog.Repository, cache *basecache.Store) *CatalogRepository {
	return &CatalogRepository{next: next, cache: cache}
}

func (r *CatalogRepository) ReplaceChampions(ctx context.Context, items []catalog.Champion) error {
	if err := r.next.ReplaceChampions(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, catalogKeyPrefix)
	return nil
}

func (r *CatalogRepository) ReplaceItems(ctx context.Context, items []catalog.Item) error {
	if err := r.next.ReplaceItems(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, catalogKeyPrefix)
	return nil
}

func (r *CatalogRepository) ReplaceSummonerSpells(ctx context.Context, items []catalog.SummonerSpell) error {
	if err := r.next.ReplaceSummonerSpells(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, catalogKeyPrefix)
	return nil
}

func (r *CatalogRepository) ListChampions(ctx context.Context) ([]catalog.Champion, error) {
	return cachedList(ctx, r.cache, catalogKeyPrefix+"champion:list", r.next.ListChampions)
}

func (r *CatalogRepository) ListItems(ctx context.Context) ([]catalog.Item, error) {
	return cachedList(ctx, r.cache, catalogKeyPrefix+"item:list", r.next.ListItems)
}

func (r *CatalogRepository) ListSummonerSpells(ctx context.Context) ([]catalog.SummonerSpell, error) {
	return cachedList(ctx, r.cache, catalogKeyPrefix+"spell:list", r.next.ListSummonerSpells)
}

func (r *CatalogRepository) ListChampionsByIDs(ctx context.Context, ids []int) ([]catalog.Champion, error) {
	key := catalogKeyPrefix + "champion:ids:" + idsKey(ids)
	return cachedList(ctx, r.cache, key, func(ctx context.Context) ([]catalog.Champion, error) {
		return r.next.ListChampionsByIDs(ctx, ids)
	})
}

func (r *CatalogRepository) ListSummonerSpellsByIDs(ctx context.Context, ids []int) ([]catalog.SummonerSpell, error) {
	key := catalogKeyPrefix + "spell:ids:" + idsKey(ids)
	return cachedList(ctx, r.cache, key, func(ctx context.Context) ([]catalog.SummonerSpell, error) {
		return r.next.ListSummonerSpellsByIDs(ctx, ids)
	})
}

func (r *CatalogRepository) GetChampionByName(ctx context.Context, name string) (catalog.Champion, bool, error) {
	return cachedLookup(ctx, r.cache, catalogKeyPrefix+"champion:name:"+strings.ToLower(name), func(ctx context.Context) (catalog.Champion, bool, error) {
		return r.next.GetChampionByName(ctx, name)
	})
}

func (r *CatalogRepository) GetItemByName(ctx context.Context, name string) (catalog.Item, bool, error) {
	return cachedLookup(ctx, r.cache, catalogKeyPrefix+"item:name:"+strings.ToLower(name), func(ctx context.Context) (catalog.Item, bool, error) {
		return r.next.GetItemByName(ctx, name)
	})
}

func (r *CatalogRepository) GetSummonerSpellByName(ctx context.Context, name string) (catalog.SummonerSpell, bool, error) {
	return cachedLookup(ctx, r.cache, catalogKeyPrefix+"spell:name:"+strings.ToLower(name), func(ctx context.Context) (catalog.SummonerSpell, bool, error) {
		return r.next.GetSummonerSpellByName(ctx, name)
	})
}

type cachedItem[T any] struct {
	value  T
	exists bool
}

func cachedList[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return append([]T(nil), items...), nil
}

func cachedLookup[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedItem[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedItem[T])
	return cached.value, cached.exists, nil
}

func idsKey(ids []int) string {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	var b strings.Builder
	for i, id := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
