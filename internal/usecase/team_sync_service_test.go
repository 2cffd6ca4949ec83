package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
	"github.com/riskibarqy/lol-stats-sync/internal/infrastructure/repository/memory"
)

func testTeamSnapshot(fullID string, members ...int64) team.Snapshot {
	snap := team.Snapshot{
		Team:   team.Team{FullID: fullID, Name: "Team " + fullID, Tag: "T", Status: "RANKED"},
		Roster: team.Roster{OwnerID: members[0]},
		StatDetails: []team.StatDetail{
			{TeamStatType: "RANKED_TEAM_5x5", Wins: 4, Losses: 2},
		},
		MatchHistory: []team.MatchHistorySummary{
			{GameID: 1, Kills: 20, Win: true},
			{GameID: 2, Kills: 11},
		},
	}
	for _, id := range members {
		snap.Members = append(snap.Members, team.MemberInfo{PlayerID: id, Status: "MEMBER"})
	}
	return snap
}

func TestTeamSyncService_SyncTeams_CreatesThenRebuilds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewTeamRepository()
	provider := newFakeRiotProvider()
	svc := NewTeamSyncService(repo, memory.NewSummonerRepository(), provider, testLogger())

	provider.teams[31] = []team.Snapshot{
		testTeamSnapshot("TEAM-a", 31, 32, 33),
		testTeamSnapshot("TEAM-b", 31),
	}
	first, err := svc.SyncTeams(ctx, 31, "euw")
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if first.Created != 2 || first.Rebuilt != 0 {
		t.Fatalf("unexpected first result: created=%d rebuilt=%d", first.Created, first.Rebuilt)
	}

	provider.teams[31] = []team.Snapshot{testTeamSnapshot("TEAM-a", 31, 34)}
	second, err := svc.SyncTeams(ctx, 31, "euw")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if second.Created != 0 || second.Rebuilt != 1 {
		t.Fatalf("unexpected second result: created=%d rebuilt=%d", second.Created, second.Rebuilt)
	}

	snap, err := svc.Get(ctx, "euw", "TEAM-a")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if len(snap.Members) != 2 || snap.Members[1].PlayerID != 34 {
		t.Fatalf("expected rebuilt roster, got %+v", snap.Members)
	}
	if len(snap.MatchHistory) != 2 || snap.MatchHistory[0].TeamID != snap.Team.ID {
		t.Fatalf("expected history linked to team %d, got %+v", snap.Team.ID, snap.MatchHistory)
	}
}

func TestTeamSyncService_SyncTeams_OneExistingOneNew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewTeamRepository()
	provider := newFakeRiotProvider()
	svc := NewTeamSyncService(repo, memory.NewSummonerRepository(), provider, testLogger())

	provider.teams[31] = []team.Snapshot{testTeamSnapshot("TEAM-a", 31, 32)}
	if _, err := svc.SyncTeams(ctx, 31, "euw"); err != nil {
		t.Fatalf("seed sync: %v", err)
	}
	before, err := svc.Get(ctx, "euw", "TEAM-a")
	if err != nil {
		t.Fatalf("get seeded team: %v", err)
	}

	rebuilt := testTeamSnapshot("TEAM-a", 31)
	rebuilt.StatDetails = nil
	rebuilt.MatchHistory = rebuilt.MatchHistory[:1]
	provider.teams[31] = []team.Snapshot{rebuilt, testTeamSnapshot("TEAM-b", 31, 35)}

	result, err := svc.SyncTeams(ctx, 31, "euw")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.Created != 1 || result.Rebuilt != 1 {
		t.Fatalf("unexpected result: created=%d rebuilt=%d", result.Created, result.Rebuilt)
	}

	teams, err := svc.List(ctx, TeamFilter{Region: "euw"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected exactly 2 teams, got=%d", len(teams))
	}

	after, err := svc.Get(ctx, "euw", "TEAM-a")
	if err != nil {
		t.Fatalf("get rebuilt team: %v", err)
	}
	if after.Team.ID == before.Team.ID || after.Roster.ID == before.Roster.ID {
		t.Fatalf("expected team and roster to be recreated")
	}
	if len(after.Members) != 1 || len(after.StatDetails) != 0 || len(after.MatchHistory) != 1 {
		t.Fatalf("old children survived rebuild: members=%d stats=%d history=%d",
			len(after.Members), len(after.StatDetails), len(after.MatchHistory))
	}
}

func TestTeamSyncService_List_ByMemberName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	summoners := memory.NewSummonerRepository(summoner.Summoner{
		SummonerID: 32, Name: "Rekkles", NormalizedName: "rekkles", Region: "euw",
	})
	provider := newFakeRiotProvider()
	provider.teams[31] = []team.Snapshot{
		testTeamSnapshot("TEAM-a", 31, 32),
		testTeamSnapshot("TEAM-b", 31),
	}
	svc := NewTeamSyncService(memory.NewTeamRepository(), summoners, provider, testLogger())
	if _, err := svc.SyncTeams(ctx, 31, "euw"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	got, err := svc.List(ctx, TeamFilter{Region: "euw", MemberName: "ReKKles "})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].FullID != "TEAM-a" {
		t.Fatalf("unexpected teams: %+v", got)
	}

	none, err := svc.List(ctx, TeamFilter{Region: "euw", MemberName: "unknown"})
	if err != nil {
		t.Fatalf("list unknown: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no teams for unknown member, got=%d", len(none))
	}
}

func TestTeamSyncService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewTeamSyncService(memory.NewTeamRepository(), memory.NewSummonerRepository(), nil, testLogger())
	if _, err := svc.Get(context.Background(), "euw", "TEAM-x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
