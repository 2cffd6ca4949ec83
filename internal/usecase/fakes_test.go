package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
)

// fakeRiotProvider serves canned upstream data and counts calls. A missing
// by-name entry answers ErrNotFound; by-ids skips unknown ids.
type fakeRiotProvider struct {
	mu sync.Mutex

	byName    map[string]ExternalSummoner
	profiles  map[int64]ExternalSummoner
	recent    map[int64][]ExternalGame
	leagues   map[int64][]league.Snapshot
	teams     map[int64][]team.Snapshot
	champions []catalog.Champion
	items     []catalog.Item
	spells    []catalog.SummonerSpell

	err     error
	calls   map[string]int
	batches [][]int64
}

func newFakeRiotProvider() *fakeRiotProvider {
	return &fakeRiotProvider{
		byName:   make(map[string]ExternalSummoner),
		profiles: make(map[int64]ExternalSummoner),
		recent:   make(map[int64][]ExternalGame),
		leagues:  make(map[int64][]league.Snapshot),
		teams:    make(map[int64][]team.Snapshot),
		calls:    make(map[string]int),
	}
}

func (f *fakeRiotProvider) addSummoner(s ExternalSummoner, normalizedName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byName[normalizedName] = s
	f.profiles[s.SummonerID] = s
}

func (f *fakeRiotProvider) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeRiotProvider) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.err
}

func (f *fakeRiotProvider) FetchSummonerByName(_ context.Context, _ string, normalizedName string) (ExternalSummoner, error) {
	if err := f.record("by_name"); err != nil {
		return ExternalSummoner{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.byName[normalizedName]
	if !ok {
		return ExternalSummoner{}, fmt.Errorf("%w: summoner %s", ErrNotFound, normalizedName)
	}
	return item, nil
}

func (f *fakeRiotProvider) FetchSummonersByIDs(_ context.Context, _ string, ids []int64) ([]ExternalSummoner, error) {
	if err := f.record("by_ids"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, slices.Clone(ids))
	out := make([]ExternalSummoner, 0, len(ids))
	for _, id := range ids {
		if item, ok := f.profiles[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRiotProvider) FetchRecentGames(_ context.Context, _ string, summonerID int64) ([]ExternalGame, error) {
	if err := f.record("recent"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recent[summonerID], nil
}

func (f *fakeRiotProvider) FetchLeaguesBySummonerIDs(_ context.Context, _ string, ids []int64) (map[int64][]league.Snapshot, error) {
	if err := f.record("leagues"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[int64][]league.Snapshot, len(ids))
	for _, id := range ids {
		if items, ok := f.leagues[id]; ok {
			out[id] = items
		}
	}
	return out, nil
}

func (f *fakeRiotProvider) FetchTeamsBySummonerID(_ context.Context, _ string, summonerID int64) ([]team.Snapshot, error) {
	if err := f.record("teams"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.teams[summonerID], nil
}

func (f *fakeRiotProvider) FetchChampions(context.Context) ([]catalog.Champion, error) {
	if err := f.record("champions"); err != nil {
		return nil, err
	}
	return f.champions, nil
}

func (f *fakeRiotProvider) FetchItems(context.Context) ([]catalog.Item, error) {
	if err := f.record("items"); err != nil {
		return nil, err
	}
	return f.items, nil
}

func (f *fakeRiotProvider) FetchSummonerSpells(context.Context) ([]catalog.SummonerSpell, error) {
	if err := f.record("spells"); err != nil {
		return nil, err
	}
	return f.spells, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testLogger() *logging.Logger {
	return logging.NewNop()
}

func intPtr(v int) *int {
	return &v
}
