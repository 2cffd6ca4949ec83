package usecase

import (
	"context"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/game"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
)

// RiotProvider is the upstream adapter. Implementations translate transport
// outcomes into ErrNotFound, ErrUpstreamUnavailable and ErrUpstreamRateLimited.
type RiotProvider interface {
	FetchSummonerByName(ctx context.Context, region, normalizedName string) (ExternalSummoner, error)
	// FetchSummonersByIDs accepts at most one batch of ids. Ids unknown
	// upstream are simply absent from the result.
	FetchSummonersByIDs(ctx context.Context, region string, summonerIDs []int64) ([]ExternalSummoner, error)
	FetchRecentGames(ctx context.Context, region string, summonerID int64) ([]ExternalGame, error)
	// FetchLeaguesBySummonerIDs returns the leagues of each requested id.
	// League snapshots carry region, queue, name and tier.
	FetchLeaguesBySummonerIDs(ctx context.Context, region string, summonerIDs []int64) (map[int64][]league.Snapshot, error)
	FetchTeamsBySummonerID(ctx context.Context, region string, summonerID int64) ([]team.Snapshot, error)

	FetchChampions(ctx context.Context) ([]catalog.Champion, error)
	FetchItems(ctx context.Context) ([]catalog.Item, error)
	FetchSummonerSpells(ctx context.Context) ([]catalog.SummonerSpell, error)
}

type ExternalSummoner struct {
	SummonerID    int64
	Name          string
	ProfileIconID int
	SummonerLevel int
	RevisionDate  int64
}

type ExternalFellowPlayer struct {
	SummonerID int64
	ChampionID int
	TeamID     int
}

// ExternalGame is one entry of a summoner's recent match history.
type ExternalGame struct {
	GameID        int64
	ChampionID    int
	CreateDate    int64
	GameMode      string
	GameType      string
	SubType       string
	Invalid       bool
	IPEarned      int
	Level         int
	MapID         int
	Spell1ID      int
	Spell2ID      int
	TeamID        int
	FellowPlayers []ExternalFellowPlayer
	Stats         game.RawStat
}
