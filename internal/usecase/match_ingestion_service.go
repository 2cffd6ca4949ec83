package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/game"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/metrics"
)

const defaultGamesPageSize = 10

type IngestResult struct {
	Fetched int
	Created int
	Skipped int
}

// MatchIngestionService persists a summoner's recent games. Each game is
// stored as stats row first, then the game, then its fellow players; a game
// already stored for the same owner is skipped and its fresh stats row
// removed.
type MatchIngestionService struct {
	summoners summoner.Repository
	games     game.Repository
	catalog   catalog.Repository
	provider  RiotProvider
	resolver  *ParticipantResolver
	now       func() time.Time
	logger    *logging.Logger
	metrics   *metrics.Metrics
}

func NewMatchIngestionService(
	summoners summoner.Repository,
	games game.Repository,
	catalogRepo catalog.Repository,
	provider RiotProvider,
	resolver *ParticipantResolver,
	logger *logging.Logger,
	m *metrics.Metrics,
) *MatchIngestionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchIngestionService{
		summoners: summoners,
		games:     games,
		catalog:   catalogRepo,
		provider:  provider,
		resolver:  resolver,
		now:       time.Now,
		logger:    logger,
		metrics:   m,
	}
}

func (s *MatchIngestionService) WithClock(now func() time.Time) *MatchIngestionService {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *MatchIngestionService) IngestRecentMatches(ctx context.Context, summonerID int64, rawRegion string) (IngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchIngestionService.IngestRecentMatches")
	defer span.End()

	reg, err := parseRegion(rawRegion)
	if err != nil {
		return IngestResult{}, err
	}
	if summonerID <= 0 {
		return IngestResult{}, fmt.Errorf("%w: summoner id must be greater than zero", ErrInvalidInput)
	}
	if s.provider == nil || s.resolver == nil {
		return IngestResult{}, fmt.Errorf("%w: match ingestion is not fully configured", ErrDependencyUnavailable)
	}

	recent, err := s.provider.FetchRecentGames(ctx, reg, summonerID)
	if err != nil {
		return IngestResult{}, fmt.Errorf("fetch recent games summoner_id=%d region=%s: %w", summonerID, reg, err)
	}
	result := IngestResult{Fetched: len(recent)}

	participantIDs := []int64{summonerID}
	for _, g := range recent {
		for _, p := range g.FellowPlayers {
			if p.SummonerID != summonerID {
				participantIDs = append(participantIDs, p.SummonerID)
			}
		}
	}
	participantIDs = uniquePositiveIDs(participantIDs)

	if err := s.resolver.EnsureCached(ctx, participantIDs, reg); err != nil {
		return IngestResult{}, fmt.Errorf("cache participants summoner_id=%d region=%s: %w", summonerID, reg, err)
	}

	known, err := s.summoners.ListBySummonerIDs(ctx, reg, participantIDs)
	if err != nil {
		return IngestResult{}, fmt.Errorf("load participants region=%s: %w", reg, err)
	}
	bySummonerID := make(map[int64]summoner.Summoner, len(known))
	for _, item := range known {
		bySummonerID[item.SummonerID] = item
	}

	owner, ok := bySummonerID[summonerID]
	if !ok {
		return IngestResult{}, fmt.Errorf("%w: summoner_id=%d region=%s", ErrNotFound, summonerID, reg)
	}

	championKeys, err := s.checkPreconditions(ctx, recent, bySummonerID, summonerID)
	if err != nil {
		return IngestResult{}, err
	}

	for _, g := range recent {
		created, err := s.storeGame(ctx, reg, owner, g, bySummonerID, championKeys)
		if err != nil {
			s.metrics.GamesIngested(result.Created, result.Skipped)
			return result, err
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	s.metrics.GamesIngested(result.Created, result.Skipped)
	s.logger.InfoContext(ctx, "recent games ingested",
		"region", reg,
		"summoner_id", summonerID,
		"fetched", result.Fetched,
		"created", result.Created,
		"skipped", result.Skipped,
	)
	return result, nil
}

// checkPreconditions verifies every catalog row and participant the games
// reference before anything is written, and returns champion keys by id.
func (s *MatchIngestionService) checkPreconditions(
	ctx context.Context,
	recent []ExternalGame,
	bySummonerID map[int64]summoner.Summoner,
	ownerID int64,
) (map[int]string, error) {
	championIDs := make([]int, 0, len(recent)*10)
	spellIDs := make([]int, 0, len(recent)*2)
	missingPlayers := make([]int64, 0)
	for _, g := range recent {
		championIDs = append(championIDs, g.ChampionID)
		spellIDs = append(spellIDs, g.Spell1ID, g.Spell2ID)
		for _, p := range g.FellowPlayers {
			championIDs = append(championIDs, p.ChampionID)
			if p.SummonerID == ownerID {
				continue
			}
			if _, ok := bySummonerID[p.SummonerID]; !ok {
				missingPlayers = append(missingPlayers, p.SummonerID)
			}
		}
	}
	championIDs = uniqueInts(championIDs)
	spellIDs = uniqueInts(spellIDs)

	if len(missingPlayers) > 0 {
		return nil, fmt.Errorf("%w: participants not cached summoner_ids=%v", ErrPreconditionFailed, uniquePositiveIDs(missingPlayers))
	}

	champions, err := s.catalog.ListChampionsByIDs(ctx, championIDs)
	if err != nil {
		return nil, fmt.Errorf("load champions: %w", err)
	}
	keys := make(map[int]string, len(champions))
	for _, c := range champions {
		keys[c.ChampionID] = c.Key
	}
	if missing := missingInts(championIDs, keys); len(missing) > 0 {
		return nil, fmt.Errorf("%w: champions missing from catalog ids=%v", ErrPreconditionFailed, missing)
	}

	spells, err := s.catalog.ListSummonerSpellsByIDs(ctx, spellIDs)
	if err != nil {
		return nil, fmt.Errorf("load summoner spells: %w", err)
	}
	knownSpells := make(map[int]string, len(spells))
	for _, sp := range spells {
		knownSpells[sp.SpellID] = sp.Key
	}
	if missing := missingInts(spellIDs, knownSpells); len(missing) > 0 {
		return nil, fmt.Errorf("%w: summoner spells missing from catalog ids=%v", ErrPreconditionFailed, missing)
	}

	return keys, nil
}

func (s *MatchIngestionService) storeGame(
	ctx context.Context,
	reg string,
	owner summoner.Summoner,
	g ExternalGame,
	bySummonerID map[int64]summoner.Summoner,
	championKeys map[int]string,
) (bool, error) {
	stats := g.Stats
	stats.ID = 0
	if err := s.games.CreateRawStat(ctx, &stats); err != nil {
		return false, fmt.Errorf("create raw stat game_id=%d: %w", g.GameID, err)
	}

	row := game.Game{
		SummonerPK:  owner.ID,
		SummonerID:  owner.SummonerID,
		ChampionID:  g.ChampionID,
		ChampionKey: championKeys[g.ChampionID],
		GameID:      g.GameID,
		CreateDate:  g.CreateDate,
		GameMode:    g.GameMode,
		GameType:    g.GameType,
		SubType:     g.SubType,
		Invalid:     g.Invalid,
		IPEarned:    g.IPEarned,
		Level:       g.Level,
		MapID:       g.MapID,
		Spell1ID:    g.Spell1ID,
		Spell2ID:    g.Spell2ID,
		TeamID:      g.TeamID,
		Region:      reg,
		RawStatID:   stats.ID,
		LastUpdate:  s.now(),
	}
	if err := s.games.CreateGame(ctx, &row); err != nil {
		cleanupErr := s.dropRawStat(ctx, stats.ID, g.GameID)
		if errors.Is(err, ErrDuplicateKey) {
			// Another ingestion stored the game first; only a failed cleanup is worth reporting.
			return false, cleanupErr
		}
		return false, errors.Join(fmt.Errorf("create game game_id=%d: %w", g.GameID, err), cleanupErr)
	}

	players := make([]game.Player, 0, len(g.FellowPlayers))
	for _, p := range g.FellowPlayers {
		if p.SummonerID == owner.SummonerID {
			continue
		}
		participant := bySummonerID[p.SummonerID]
		players = append(players, game.Player{
			GamePK:     row.ID,
			SummonerPK: participant.ID,
			SummonerID: p.SummonerID,
			ChampionID: p.ChampionID,
			TeamID:     p.TeamID,
		})
	}
	if err := s.games.CreatePlayers(ctx, players); err != nil {
		// Dropping the stats row cascades to the half-written game.
		cleanupErr := s.dropRawStat(ctx, stats.ID, g.GameID)
		return false, errors.Join(fmt.Errorf("create players game_id=%d: %w", g.GameID, err), cleanupErr)
	}
	return true, nil
}

// dropRawStat removes a statistics row whose game could not be completed.
// A failure is logged here and returned so callers can join it with the
// error that triggered the cleanup.
func (s *MatchIngestionService) dropRawStat(ctx context.Context, rawStatID, gameID int64) error {
	if err := s.games.DeleteRawStat(ctx, rawStatID); err != nil {
		s.logger.ErrorContext(ctx, "orphaned raw stat cleanup failed",
			"raw_stat_id", rawStatID,
			"game_id", gameID,
			"error", err,
		)
		return fmt.Errorf("delete raw stat id=%d: %w", rawStatID, err)
	}
	return nil
}

func (s *MatchIngestionService) ListGamesBySummoner(ctx context.Context, rawRegion, name string, page int) ([]game.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchIngestionService.ListGamesBySummoner")
	defer span.End()

	reg, normalized, err := parseSummonerKey(name, rawRegion)
	if err != nil {
		return nil, err
	}
	owner, found, err := s.summoners.GetByNormalizedName(ctx, reg, normalized)
	if err != nil {
		return nil, fmt.Errorf("get summoner region=%s name=%s: %w", reg, normalized, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: summoner region=%s name=%s", ErrNotFound, reg, normalized)
	}

	games, err := s.games.ListBySummoner(ctx, owner.ID, page, defaultGamesPageSize)
	if err != nil {
		return nil, fmt.Errorf("list games summoner_pk=%d: %w", owner.ID, err)
	}
	return s.details(ctx, games)
}

func (s *MatchIngestionService) ListGamesByGameID(ctx context.Context, rawRegion string, gameID int64) ([]game.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchIngestionService.ListGamesByGameID")
	defer span.End()

	reg, err := parseRegion(rawRegion)
	if err != nil {
		return nil, err
	}
	games, err := s.games.ListByGameID(ctx, reg, gameID)
	if err != nil {
		return nil, fmt.Errorf("list games game_id=%d region=%s: %w", gameID, reg, err)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("%w: game_id=%d region=%s", ErrNotFound, gameID, reg)
	}
	return s.details(ctx, games)
}

// GetRawStat returns the stats row of the first stored view of gameID.
func (s *MatchIngestionService) GetRawStat(ctx context.Context, rawRegion string, gameID int64) (game.RawStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchIngestionService.GetRawStat")
	defer span.End()

	reg, err := parseRegion(rawRegion)
	if err != nil {
		return game.RawStat{}, err
	}
	games, err := s.games.ListByGameID(ctx, reg, gameID)
	if err != nil {
		return game.RawStat{}, fmt.Errorf("list games game_id=%d region=%s: %w", gameID, reg, err)
	}
	if len(games) == 0 {
		return game.RawStat{}, fmt.Errorf("%w: game_id=%d region=%s", ErrNotFound, gameID, reg)
	}

	stats, found, err := s.games.GetRawStat(ctx, games[0].RawStatID)
	if err != nil {
		return game.RawStat{}, fmt.Errorf("get raw stat id=%d: %w", games[0].RawStatID, err)
	}
	if !found {
		return game.RawStat{}, fmt.Errorf("%w: raw stat id=%d", ErrNotFound, games[0].RawStatID)
	}
	return stats, nil
}

func (s *MatchIngestionService) ListPlayers(ctx context.Context, gamePK int64) ([]game.Player, error) {
	players, err := s.games.ListPlayers(ctx, gamePK)
	if err != nil {
		return nil, fmt.Errorf("list players game_pk=%d: %w", gamePK, err)
	}
	return players, nil
}

// ResetRecent drops every stored game and identity.
func (s *MatchIngestionService) ResetRecent(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchIngestionService.ResetRecent")
	defer span.End()

	if err := s.games.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete games: %w", err)
	}
	if err := s.summoners.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete summoners: %w", err)
	}
	s.logger.WarnContext(ctx, "recent data reset")
	return nil
}

func (s *MatchIngestionService) details(ctx context.Context, games []game.Game) ([]game.Detail, error) {
	out := make([]game.Detail, 0, len(games))
	for _, g := range games {
		stats, _, err := s.games.GetRawStat(ctx, g.RawStatID)
		if err != nil {
			return nil, fmt.Errorf("get raw stat id=%d: %w", g.RawStatID, err)
		}
		players, err := s.games.ListPlayers(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("list players game_pk=%d: %w", g.ID, err)
		}
		out = append(out, game.Detail{Game: g, Stats: stats, Players: players})
	}
	return out, nil
}

func uniqueInts(ids []int) []int {
	out := append([]int(nil), ids...)
	slices.Sort(out)
	return slices.Compact(out)
}

func missingInts(ids []int, known map[int]string) []int {
	missing := make([]int, 0)
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
