package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/game"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	"github.com/riskibarqy/lol-stats-sync/internal/infrastructure/repository/memory"
)

const testOwnerID int64 = 100

type ingestionFixture struct {
	summoners *memory.SummonerRepository
	games     *memory.GameRepository
	catalog   *memory.CatalogRepository
	provider  *fakeRiotProvider
	service   *MatchIngestionService
}

func newIngestionFixture(t *testing.T) *ingestionFixture {
	t.Helper()

	ctx := context.Background()
	catalogRepo := memory.NewCatalogRepository()
	champions := make([]catalog.Champion, 0, 20)
	for id := 1; id <= 20; id++ {
		champions = append(champions, catalog.Champion{ChampionID: id, Key: fmt.Sprintf("Champ%d", id), Name: fmt.Sprintf("Champion %d", id)})
	}
	if err := catalogRepo.ReplaceChampions(ctx, champions); err != nil {
		t.Fatalf("seed champions: %v", err)
	}
	if err := catalogRepo.ReplaceSummonerSpells(ctx, []catalog.SummonerSpell{
		{SpellID: 4, Key: "SummonerFlash", Name: "Flash"},
		{SpellID: 14, Key: "SummonerDot", Name: "Ignite"},
	}); err != nil {
		t.Fatalf("seed spells: %v", err)
	}

	provider := newFakeRiotProvider()
	provider.addSummoner(ExternalSummoner{SummonerID: testOwnerID, Name: "Owner"}, "owner")
	for id := int64(200); id < 220; id++ {
		provider.profiles[id] = ExternalSummoner{SummonerID: id, Name: fmt.Sprintf("Fellow %d", id)}
	}

	summoners := memory.NewSummonerRepository()
	games := memory.NewGameRepository()
	resolver := NewParticipantResolver(summoners, provider, ParticipantResolverConfig{Concurrency: 2}, testLogger(), nil)

	return &ingestionFixture{
		summoners: summoners,
		games:     games,
		catalog:   catalogRepo,
		provider:  provider,
		service:   NewMatchIngestionService(summoners, games, catalogRepo, provider, resolver, testLogger(), nil),
	}
}

func testGame(gameID int64) ExternalGame {
	fellows := make([]ExternalFellowPlayer, 0, 9)
	for i := int64(0); i < 9; i++ {
		fellows = append(fellows, ExternalFellowPlayer{
			SummonerID: 200 + (gameID+i)%20,
			ChampionID: int(1 + (gameID+i)%20),
			TeamID:     100 + 100*int(i%2),
		})
	}
	return ExternalGame{
		GameID:        gameID,
		ChampionID:    int(1 + gameID%20),
		CreateDate:    1_400_000_000_000 + gameID*1000,
		GameMode:      "CLASSIC",
		GameType:      "MATCHED_GAME",
		SubType:       "RANKED_SOLO_5x5",
		MapID:         11,
		Spell1ID:      4,
		Spell2ID:      14,
		TeamID:        100,
		FellowPlayers: fellows,
		Stats: game.RawStat{
			ChampionsKilled: intPtr(int(gameID)),
			NumDeaths:       intPtr(0),
		},
	}
}

func countRawStats(t *testing.T, repo *memory.GameRepository, maxID int64) int {
	t.Helper()

	count := 0
	for id := int64(1); id <= maxID; id++ {
		_, found, err := repo.GetRawStat(context.Background(), id)
		if err != nil {
			t.Fatalf("get raw stat: %v", err)
		}
		if found {
			count++
		}
	}
	return count
}

func TestMatchIngestionService_IngestRecentMatches_SkipsAlreadyStoredGames(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newIngestionFixture(t)

	for id := int64(1); id <= 7; id++ {
		fx.provider.recent[testOwnerID] = append(fx.provider.recent[testOwnerID], testGame(id))
	}
	first, err := fx.service.IngestRecentMatches(ctx, testOwnerID, "kr")
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	if first.Created != 7 || first.Skipped != 0 {
		t.Fatalf("unexpected first result: created=%d skipped=%d", first.Created, first.Skipped)
	}

	for id := int64(8); id <= 10; id++ {
		fx.provider.recent[testOwnerID] = append(fx.provider.recent[testOwnerID], testGame(id))
	}
	second, err := fx.service.IngestRecentMatches(ctx, testOwnerID, "kr")
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if second.Fetched != 10 || second.Created != 3 || second.Skipped != 7 {
		t.Fatalf("unexpected second result: fetched=%d created=%d skipped=%d", second.Fetched, second.Created, second.Skipped)
	}

	if got := countRawStats(t, fx.games, 17); got != 10 {
		t.Fatalf("expected one stats row per stored game, got=%d", got)
	}

	details, err := fx.service.ListGamesBySummoner(ctx, "kr", "Owner", 1)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(details) != 10 {
		t.Fatalf("expected 10 games on first page, got=%d", len(details))
	}
	if details[0].Game.GameID != 10 || details[9].Game.GameID != 1 {
		t.Fatalf("expected newest first, got first=%d last=%d", details[0].Game.GameID, details[9].Game.GameID)
	}
	if len(details[0].Players) != 9 {
		t.Fatalf("expected 9 fellow players, got=%d", len(details[0].Players))
	}
	if details[0].Game.ChampionKey != "Champ11" {
		t.Fatalf("unexpected champion key: got=%s", details[0].Game.ChampionKey)
	}
}

func TestMatchIngestionService_IngestRecentMatches_MissingCatalogFailsBeforeWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newIngestionFixture(t)

	broken := testGame(1)
	broken.Spell2ID = 32
	fx.provider.recent[testOwnerID] = []ExternalGame{testGame(2), broken}

	_, err := fx.service.IngestRecentMatches(ctx, testOwnerID, "kr")
	if !errors.Is(err, ErrPreconditionFailed) {
		t.Fatalf("expected ErrPreconditionFailed, got %v", err)
	}
	if got := countRawStats(t, fx.games, 5); got != 0 {
		t.Fatalf("expected no stats written, got=%d", got)
	}
}

func TestMatchIngestionService_IngestRecentMatches_PreservesAbsentStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newIngestionFixture(t)
	fx.provider.recent[testOwnerID] = []ExternalGame{testGame(3)}

	if _, err := fx.service.IngestRecentMatches(ctx, testOwnerID, "kr"); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	stats, err := fx.service.GetRawStat(ctx, "kr", 3)
	if err != nil {
		t.Fatalf("get raw stat: %v", err)
	}
	if stats.Assists != nil {
		t.Fatalf("expected absent assists to stay nil, got=%d", *stats.Assists)
	}
	if stats.NumDeaths == nil || *stats.NumDeaths != 0 {
		t.Fatalf("expected zero deaths to be kept, got=%v", stats.NumDeaths)
	}
	if stats.ChampionsKilled == nil || *stats.ChampionsKilled != 3 {
		t.Fatalf("unexpected kills: %v", stats.ChampionsKilled)
	}
}

func TestMatchIngestionService_IngestRecentMatches_UnknownOwner(t *testing.T) {
	t.Parallel()

	fx := newIngestionFixture(t)
	_, err := fx.service.IngestRecentMatches(context.Background(), 999, "kr")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchIngestionService_ListGamesByGameID_NotFound(t *testing.T) {
	t.Parallel()

	fx := newIngestionFixture(t)
	_, err := fx.service.ListGamesByGameID(context.Background(), "kr", 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchIngestionService_ResetRecent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx := newIngestionFixture(t)
	fx.provider.recent[testOwnerID] = []ExternalGame{testGame(1)}
	if _, err := fx.service.IngestRecentMatches(ctx, testOwnerID, "kr"); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	if err := fx.service.ResetRecent(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := fx.service.ListGamesByGameID(ctx, "kr", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected games cleared, got %v", err)
	}
	remaining, err := fx.summoners.List(ctx, summoner.Filter{})
	if err != nil {
		t.Fatalf("list summoners: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected summoners cleared, got=%d", len(remaining))
	}
}

type failingGameRepository struct {
	*memory.GameRepository
	createGameErr    error
	createPlayersErr error
	deleteErr        error
}

func (r *failingGameRepository) CreateGame(ctx context.Context, item *game.Game) error {
	if r.createGameErr != nil {
		return r.createGameErr
	}
	return r.GameRepository.CreateGame(ctx, item)
}

func (r *failingGameRepository) CreatePlayers(ctx context.Context, items []game.Player) error {
	if r.createPlayersErr != nil {
		return r.createPlayersErr
	}
	return r.GameRepository.CreatePlayers(ctx, items)
}

func (r *failingGameRepository) DeleteRawStat(ctx context.Context, rawStatID int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	return r.GameRepository.DeleteRawStat(ctx, rawStatID)
}

func TestMatchIngestionService_IngestRecentMatches_CleanupFailureKeepsCause(t *testing.T) {
	t.Parallel()

	errWrite := errors.New("write failed")
	errCleanup := errors.New("cleanup failed")

	tests := []struct {
		name         string
		repo         failingGameRepository
		wantCause    error
		wantCleanup  bool
		wantRawStats int
	}{
		{
			name:         "players fail and cleanup fails",
			repo:         failingGameRepository{createPlayersErr: errWrite, deleteErr: errCleanup},
			wantCause:    errWrite,
			wantCleanup:  true,
			wantRawStats: 1,
		},
		{
			name:         "players fail and cleanup succeeds",
			repo:         failingGameRepository{createPlayersErr: errWrite},
			wantCause:    errWrite,
			wantRawStats: 0,
		},
		{
			name:         "game fails and cleanup fails",
			repo:         failingGameRepository{createGameErr: errWrite, deleteErr: errCleanup},
			wantCause:    errWrite,
			wantCleanup:  true,
			wantRawStats: 1,
		},
		{
			name:         "duplicate game and cleanup fails",
			repo:         failingGameRepository{createGameErr: ErrDuplicateKey, deleteErr: errCleanup},
			wantCleanup:  true,
			wantRawStats: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			fx := newIngestionFixture(t)
			fx.provider.recent[testOwnerID] = []ExternalGame{testGame(4)}

			repo := tc.repo
			repo.GameRepository = fx.games
			resolver := NewParticipantResolver(fx.summoners, fx.provider, ParticipantResolverConfig{Concurrency: 2}, testLogger(), nil)
			svc := NewMatchIngestionService(fx.summoners, &repo, fx.catalog, fx.provider, resolver, testLogger(), nil)

			_, err := svc.IngestRecentMatches(ctx, testOwnerID, "kr")
			if err == nil {
				t.Fatal("expected ingestion error")
			}
			if tc.wantCause != nil && !errors.Is(err, tc.wantCause) {
				t.Fatalf("expected cause %v to be kept, got %v", tc.wantCause, err)
			}
			if errors.Is(err, errCleanup) != tc.wantCleanup {
				t.Fatalf("unexpected cleanup error reporting: got %v", err)
			}
			if errors.Is(err, ErrDuplicateKey) {
				t.Fatalf("duplicate key must not escalate, got %v", err)
			}
			if got := countRawStats(t, fx.games, 5); got != tc.wantRawStats {
				t.Fatalf("unexpected raw stat rows: got=%d want=%d", got, tc.wantRawStats)
			}
		})
	}
}
