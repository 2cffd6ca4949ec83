package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/infrastructure/repository/memory"
)

func testLeagueSnapshot(entryCount int) league.Snapshot {
	entries := make([]league.Entry, 0, entryCount)
	for i := 0; i < entryCount; i++ {
		entries = append(entries, league.Entry{
			Division:         "I",
			LeaguePoints:     10 * i,
			PlayerOrTeamID:   fmt.Sprintf("%d", 1000+i),
			PlayerOrTeamName: fmt.Sprintf("player %d", i),
			Wins:             i,
		})
	}
	return league.Snapshot{
		League:  league.League{Queue: "RANKED_SOLO_5x5", Name: "Taric's Enforcers", Tier: "GOLD"},
		Entries: entries,
	}
}

func TestLeagueSyncService_SyncLeagues_ReplacesEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewLeagueRepository()
	provider := newFakeRiotProvider()
	svc := NewLeagueSyncService(repo, provider, testLogger())

	provider.leagues[77] = []league.Snapshot{testLeagueSnapshot(5)}
	first, err := svc.SyncLeagues(ctx, 77, "na")
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if first.Leagues != 1 || first.Entries != 5 {
		t.Fatalf("unexpected first result: leagues=%d entries=%d", first.Leagues, first.Entries)
	}

	provider.leagues[77] = []league.Snapshot{testLeagueSnapshot(3)}
	if _, err := svc.SyncLeagues(ctx, 77, "na"); err != nil {
		t.Fatalf("second sync: %v", err)
	}

	got, err := svc.Get(ctx, "na", "ranked_solo_5x5", "gold", "Taric's Enforcers")
	if err != nil {
		t.Fatalf("get league: %v", err)
	}
	if len(got.Entries) != 3 {
		t.Fatalf("expected 3 entries after replace, got=%d", len(got.Entries))
	}

	leagues, err := svc.List(ctx, league.Filter{Region: "na"})
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(leagues) != 1 {
		t.Fatalf("expected league reused, got=%d", len(leagues))
	}
}

func TestLeagueSyncService_SyncLeagues_CollapsesDuplicateEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewLeagueRepository()
	provider := newFakeRiotProvider()
	svc := NewLeagueSyncService(repo, provider, testLogger())

	snap := testLeagueSnapshot(2)
	dupe := snap.Entries[0]
	dupe.LeaguePoints = 99
	snap.Entries = append(snap.Entries, dupe)
	// The same league can appear twice in one payload.
	provider.leagues[77] = []league.Snapshot{snap, testLeagueSnapshot(1)}

	result, err := svc.SyncLeagues(ctx, 77, "na")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.Leagues != 1 || result.Entries != 2 {
		t.Fatalf("unexpected result: leagues=%d entries=%d", result.Leagues, result.Entries)
	}

	entries, err := svc.ListEntriesByParticipant(ctx, "na", "1000")
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 1 || entries[0].LeaguePoints != 0 {
		t.Fatalf("expected first entry to win, got %+v", entries)
	}
}

func TestLeagueSyncService_SyncLeagues_NoLeagues(t *testing.T) {
	t.Parallel()

	svc := NewLeagueSyncService(memory.NewLeagueRepository(), newFakeRiotProvider(), testLogger())
	result, err := svc.SyncLeagues(context.Background(), 5, "euw")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.Leagues != 0 {
		t.Fatalf("expected no leagues, got=%d", result.Leagues)
	}
}

func TestLeagueSyncService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewLeagueSyncService(memory.NewLeagueRepository(), nil, testLogger())
	_, err := svc.Get(context.Background(), "na", "RANKED_SOLO_5x5", "GOLD", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueSyncService_LookupIgnoresLadderCasing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := newFakeRiotProvider()
	svc := NewLeagueSyncService(memory.NewLeagueRepository(), provider, testLogger())

	snap := testLeagueSnapshot(2)
	snap.League.Tier = "Gold"
	provider.leagues[77] = []league.Snapshot{snap}
	if _, err := svc.SyncLeagues(ctx, 77, "na"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	for _, queue := range []string{"RANKED_SOLO_5x5", "ranked_solo_5x5", " RANKED_SOLO_5X5 "} {
		got, err := svc.Get(ctx, "na", queue, "GOLD", "Taric's Enforcers")
		if err != nil {
			t.Fatalf("get league queue=%q: %v", queue, err)
		}
		if len(got.Entries) != 2 {
			t.Fatalf("unexpected entries for queue=%q got=%d", queue, len(got.Entries))
		}

		items, err := svc.List(ctx, league.Filter{Region: "na", Queue: queue, Tier: "gold"})
		if err != nil {
			t.Fatalf("list leagues queue=%q: %v", queue, err)
		}
		if len(items) != 1 {
			t.Fatalf("unexpected list size for queue=%q got=%d", queue, len(items))
		}
		if items[0].Queue != "RANKED_SOLO_5X5" || items[0].Tier != "GOLD" {
			t.Fatalf("unexpected stored ladder values queue=%q tier=%q", items[0].Queue, items[0].Tier)
		}
	}
}
