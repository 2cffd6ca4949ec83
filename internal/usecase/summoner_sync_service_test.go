package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
	"github.com/riskibarqy/lol-stats-sync/internal/infrastructure/repository/memory"
)

type syncFixture struct {
	provider *fakeRiotProvider
	clock    *fakeClock
	service  *SummonerSyncService
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()

	ingest := newIngestionFixture(t)
	clock := newFakeClock(testSyncedAt)

	summoners := NewSummonerService(ingest.summoners, ingest.provider, 10*time.Second, testLogger(), nil).WithClock(clock.Now)
	leagues := NewLeagueSyncService(memory.NewLeagueRepository(), ingest.provider, testLogger())
	teams := NewTeamSyncService(memory.NewTeamRepository(), ingest.summoners, ingest.provider, testLogger())

	ingest.provider.recent[testOwnerID] = []ExternalGame{testGame(1), testGame(2)}
	ingest.provider.leagues[testOwnerID] = []league.Snapshot{testLeagueSnapshot(4)}
	ingest.provider.teams[testOwnerID] = []team.Snapshot{testTeamSnapshot("TEAM-o", testOwnerID)}

	return &syncFixture{
		provider: ingest.provider,
		clock:    clock,
		service:  NewSummonerSyncService(summoners, ingest.service, leagues, teams, testLogger()),
	}
}

func TestSummonerSyncService_Sync_RunsDownstreamWhenRefreshed(t *testing.T) {
	t.Parallel()

	fx := newSyncFixture(t)
	report, err := fx.service.Sync(context.Background(), "Owner", "kr")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if report.Outcome != ResolveCreated {
		t.Fatalf("unexpected outcome: got=%s", report.Outcome)
	}
	if report.Games.Created != 2 || report.Leagues.Entries != 4 || report.Teams.Created != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if got := report.Summary()["games_created"]; got != 2 {
		t.Fatalf("unexpected summary games_created: got=%v", got)
	}
}

func TestSummonerSyncService_Sync_FreshSkipsUpstream(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newSyncFixture(t)
	if _, err := fx.service.Sync(ctx, "Owner", "kr"); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	fx.clock.Advance(5 * time.Second)
	report, err := fx.service.Sync(ctx, "owner", "kr")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if report.Outcome != ResolveFresh {
		t.Fatalf("expected fresh, got=%s", report.Outcome)
	}
	if got := fx.provider.callCount("recent"); got != 1 {
		t.Fatalf("expected recent games fetched once, got=%d", got)
	}
	if got := fx.provider.callCount("by_name"); got != 1 {
		t.Fatalf("expected one by-name lookup, got=%d", got)
	}
}

func TestSummonerSyncService_Sync_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	fx := newSyncFixture(t)
	fx.provider.recent[testOwnerID] = []ExternalGame{func() ExternalGame {
		g := testGame(1)
		g.ChampionID = 500
		return g
	}()}

	_, err := fx.service.Sync(context.Background(), "Owner", "kr")
	if !errors.Is(err, ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}
	if got := fx.provider.callCount("leagues"); got != 0 {
		t.Fatalf("expected league sync skipped, got=%d calls", got)
	}
}

func TestSummonerSyncService_SyncDownstream_PropagatesUpstreamError(t *testing.T) {
	t.Parallel()

	fx := newSyncFixture(t)
	report, err := fx.service.Sync(context.Background(), "Owner", "kr")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	fx.provider.err = fmt.Errorf("%w: status 503", ErrUpstreamUnavailable)
	if _, err := fx.service.SyncDownstream(context.Background(), report.Summoner); !IsTransient(err) {
		t.Fatalf("expected transient error, got %v", err)
	}
}
