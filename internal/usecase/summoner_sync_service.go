package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
)

type SyncReport struct {
	Summoner summoner.Summoner
	Outcome  ResolveOutcome
	Games    IngestResult
	Leagues  LeagueSyncResult
	Teams    TeamSyncResult
}

// Summary flattens the report into the task result payload.
func (r SyncReport) Summary() map[string]any {
	return map[string]any{
		"summoner_id":    r.Summoner.SummonerID,
		"name":           r.Summoner.Name,
		"region":         r.Summoner.Region,
		"outcome":        string(r.Outcome),
		"games_fetched":  r.Games.Fetched,
		"games_created":  r.Games.Created,
		"games_skipped":  r.Games.Skipped,
		"leagues":        r.Leagues.Leagues,
		"league_entries": r.Leagues.Entries,
		"teams_created":  r.Teams.Created,
		"teams_rebuilt":  r.Teams.Rebuilt,
		"teams_skipped":  r.Teams.Skipped,
	}
}

// SummonerSyncService resolves a summoner and, when the identity was just
// refreshed, pulls its matches, leagues and teams.
type SummonerSyncService struct {
	summoners *SummonerService
	matches   *MatchIngestionService
	leagues   *LeagueSyncService
	teams     *TeamSyncService
	logger    *logging.Logger
}

func NewSummonerSyncService(
	summoners *SummonerService,
	matches *MatchIngestionService,
	leagues *LeagueSyncService,
	teams *TeamSyncService,
	logger *logging.Logger,
) *SummonerSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SummonerSyncService{
		summoners: summoners,
		matches:   matches,
		leagues:   leagues,
		teams:     teams,
		logger:    logger,
	}
}

func (s *SummonerSyncService) Sync(ctx context.Context, name, rawRegion string) (SyncReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummonerSyncService.Sync")
	defer span.End()

	resolved, err := s.summoners.Resolve(ctx, name, rawRegion)
	if err != nil {
		return SyncReport{}, err
	}

	report := SyncReport{Summoner: resolved.Summoner, Outcome: resolved.Outcome}
	if !resolved.Outcome.Refreshed() {
		return report, nil
	}
	return s.syncDownstream(ctx, report)
}

// SyncDownstream runs the match, league and team sync for an identity that
// was already resolved.
func (s *SummonerSyncService) SyncDownstream(ctx context.Context, item summoner.Summoner) (SyncReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummonerSyncService.SyncDownstream")
	defer span.End()

	return s.syncDownstream(ctx, SyncReport{Summoner: item, Outcome: ResolveStale})
}

func (s *SummonerSyncService) syncDownstream(ctx context.Context, report SyncReport) (SyncReport, error) {
	id := report.Summoner.SummonerID
	reg := report.Summoner.Region

	games, err := s.matches.IngestRecentMatches(ctx, id, reg)
	if err != nil {
		return report, fmt.Errorf("ingest recent matches summoner_id=%d: %w", id, err)
	}
	report.Games = games

	leagues, err := s.leagues.SyncLeagues(ctx, id, reg)
	if err != nil {
		return report, fmt.Errorf("sync leagues summoner_id=%d: %w", id, err)
	}
	report.Leagues = leagues

	teams, err := s.teams.SyncTeams(ctx, id, reg)
	if err != nil {
		return report, fmt.Errorf("sync teams summoner_id=%d: %w", id, err)
	}
	report.Teams = teams

	s.logger.InfoContext(ctx, "summoner synced",
		"region", reg,
		"summoner_id", id,
		"games_created", games.Created,
		"games_skipped", games.Skipped,
		"leagues", leagues.Leagues,
		"teams", teams.Created+teams.Rebuilt,
	)
	return report, nil
}
