package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/storage"
)

type leagueKey struct {
	region, queue, name, tier string
}

type LeagueRepository struct {
	mu        sync.RWMutex
	nextID    int64
	nextEntry int64
	leagues   map[int64]league.League
	keys      map[leagueKey]int64
	entries   map[int64][]league.Entry
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{
		leagues: make(map[int64]league.League),
		keys:    make(map[leagueKey]int64),
		entries: make(map[int64][]league.Entry),
	}
}

func (r *LeagueRepository) FindOrCreate(_ context.Context, item league.League) (league.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := leagueKey{region: item.Region, queue: item.Queue, name: item.Name, tier: item.Tier}
	if id, ok := r.keys[key]; ok {
		return r.leagues[id], nil
	}
	r.nextID++
	item.ID = r.nextID
	r.leagues[item.ID] = item
	r.keys[key] = item.ID
	return item, nil
}

func (r *LeagueRepository) ReplaceEntries(_ context.Context, leagueID int64, entries []league.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leagues[leagueID]; !ok {
		return fmt.Errorf("replace league entries: league %d does not exist", leagueID)
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]league.Entry, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.PlayerOrTeamID]; dup {
			return fmt.Errorf("insert league entries league_id=%d: %w", leagueID, storage.ErrDuplicateKey)
		}
		seen[e.PlayerOrTeamID] = struct{}{}

		r.nextEntry++
		e.ID = r.nextEntry
		e.LeagueID = leagueID
		if e.MiniSeries != nil {
			series := *e.MiniSeries
			e.MiniSeries = &series
		}
		out = append(out, e)
	}
	r.entries[leagueID] = out
	return nil
}

func (r *LeagueRepository) List(_ context.Context, filter league.Filter) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]league.League, 0, len(r.leagues))
	for _, l := range r.leagues {
		if filter.Region != "" && l.Region != filter.Region {
			continue
		}
		if filter.Queue != "" && l.Queue != filter.Queue {
			continue
		}
		if filter.Tier != "" && l.Tier != filter.Tier {
			continue
		}
		all = append(all, l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	start, end := pageBounds(len(all), filter.Page, filter.PageSize)
	return append([]league.League(nil), all[start:end]...), nil
}

func (r *LeagueRepository) Get(_ context.Context, region, queue, tier, name string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.keys[leagueKey{region: region, queue: queue, name: name, tier: tier}]
	if !ok {
		return league.League{}, false, nil
	}
	return r.leagues[id], true, nil
}

func (r *LeagueRepository) ListEntries(_ context.Context, leagueID int64) ([]league.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]league.Entry(nil), r.entries[leagueID]...), nil
}

func (r *LeagueRepository) ListEntriesByPlayerOrTeamID(_ context.Context, region, playerOrTeamID string) ([]league.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.Entry, 0)
	for leagueID, entries := range r.entries {
		if r.leagues[leagueID].Region != region {
			continue
		}
		for _, e := range entries {
			if e.PlayerOrTeamID == playerOrTeamID {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeagueID < out[j].LeagueID })
	return out, nil
}

func (r *LeagueRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leagues = make(map[int64]league.League)
	r.keys = make(map[leagueKey]int64)
	r.entries = make(map[int64][]league.Entry)
	return nil
}
