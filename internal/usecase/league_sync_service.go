package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
)

type LeagueSyncResult struct {
	Leagues int
	Entries int
}

type LeagueSyncService struct {
	repo     league.Repository
	provider RiotProvider
	logger   *logging.Logger
}

func NewLeagueSyncService(repo league.Repository, provider RiotProvider, logger *logging.Logger) *LeagueSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueSyncService{repo: repo, provider: provider, logger: logger}
}

// SyncLeagues replaces the entries of every league the summoner is in with
// the upstream snapshot.
func (s *LeagueSyncService) SyncLeagues(ctx context.Context, summonerID int64, rawRegion string) (LeagueSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueSyncService.SyncLeagues")
	defer span.End()

	reg, err := parseRegion(rawRegion)
	if err != nil {
		return LeagueSyncResult{}, err
	}
	if s.provider == nil {
		return LeagueSyncResult{}, fmt.Errorf("%w: riot provider is not configured", ErrDependencyUnavailable)
	}

	bySummoner, err := s.provider.FetchLeaguesBySummonerIDs(ctx, reg, []int64{summonerID})
	if err != nil {
		return LeagueSyncResult{}, fmt.Errorf("fetch leagues summoner_id=%d region=%s: %w", summonerID, reg, err)
	}

	snapshots := mergeLeagueSnapshots(reg, bySummoner[summonerID])
	result := LeagueSyncResult{}
	for _, snap := range snapshots {
		if err := snap.League.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip invalid league from upstream", "region", reg, "summoner_id", summonerID, "error", err)
			continue
		}

		stored, err := s.repo.FindOrCreate(ctx, snap.League)
		if err != nil {
			return result, fmt.Errorf("find or create league queue=%s tier=%s name=%s: %w", snap.League.Queue, snap.League.Tier, snap.League.Name, err)
		}

		entries := league.DedupeEntries(snap.Entries)
		if dropped := len(snap.Entries) - len(entries); dropped > 0 {
			s.logger.WarnContext(ctx, "collapsed duplicate league entries", "league_id", stored.ID, "dropped", dropped)
		}
		if err := s.repo.ReplaceEntries(ctx, stored.ID, entries); err != nil {
			return result, fmt.Errorf("replace league entries league_id=%d: %w", stored.ID, err)
		}

		result.Leagues++
		result.Entries += len(entries)
	}

	s.logger.InfoContext(ctx, "leagues synced",
		"region", reg,
		"summoner_id", summonerID,
		"leagues", result.Leagues,
		"entries", result.Entries,
	)
	return result, nil
}

func (s *LeagueSyncService) List(ctx context.Context, filter league.Filter) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueSyncService.List")
	defer span.End()

	if filter.Region != "" {
		reg, err := parseRegion(filter.Region)
		if err != nil {
			return nil, err
		}
		filter.Region = reg
	}
	filter.Queue = normalizeLadderValue(filter.Queue)
	filter.Tier = normalizeLadderValue(filter.Tier)

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return items, nil
}

// Get returns one league with its entries.
func (s *LeagueSyncService) Get(ctx context.Context, rawRegion, queue, tier, name string) (league.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueSyncService.Get")
	defer span.End()

	reg, err := parseRegion(rawRegion)
	if err != nil {
		return league.Snapshot{}, err
	}
	queue = normalizeLadderValue(queue)
	tier = normalizeLadderValue(tier)

	item, found, err := s.repo.Get(ctx, reg, queue, tier, name)
	if err != nil {
		return league.Snapshot{}, fmt.Errorf("get league: %w", err)
	}
	if !found {
		return league.Snapshot{}, fmt.Errorf("%w: league region=%s queue=%s tier=%s name=%s", ErrNotFound, reg, queue, tier, name)
	}

	entries, err := s.repo.ListEntries(ctx, item.ID)
	if err != nil {
		return league.Snapshot{}, fmt.Errorf("list league entries league_id=%d: %w", item.ID, err)
	}
	return league.Snapshot{League: item, Entries: entries}, nil
}

// ListEntriesByParticipant returns every ladder entry of a summoner or team id.
func (s *LeagueSyncService) ListEntriesByParticipant(ctx context.Context, rawRegion, playerOrTeamID string) ([]league.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueSyncService.ListEntriesByParticipant")
	defer span.End()

	reg, err := parseRegion(rawRegion)
	if err != nil {
		return nil, err
	}
	playerOrTeamID = strings.TrimSpace(playerOrTeamID)
	if playerOrTeamID == "" {
		return nil, fmt.Errorf("%w: player or team id is required", ErrInvalidInput)
	}

	entries, err := s.repo.ListEntriesByPlayerOrTeamID(ctx, reg, playerOrTeamID)
	if err != nil {
		return nil, fmt.Errorf("list league entries participant=%s: %w", playerOrTeamID, err)
	}
	return entries, nil
}

func (s *LeagueSyncService) Reset(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete leagues: %w", err)
	}
	s.logger.WarnContext(ctx, "leagues reset")
	return nil
}

// mergeLeagueSnapshots folds snapshots sharing (queue, name, tier) into one,
// keeping payload order. Queue and tier are stored in the same upper-case form
// that List and Get query with.
func mergeLeagueSnapshots(reg string, snaps []league.Snapshot) []league.Snapshot {
	index := make(map[string]int, len(snaps))
	out := make([]league.Snapshot, 0, len(snaps))
	for _, snap := range snaps {
		snap.League.Region = reg
		snap.League.Queue = normalizeLadderValue(snap.League.Queue)
		snap.League.Tier = normalizeLadderValue(snap.League.Tier)
		key := snap.League.Queue + "\x00" + snap.League.Name + "\x00" + snap.League.Tier
		if i, ok := index[key]; ok {
			out[i].Entries = append(out[i].Entries, snap.Entries...)
			continue
		}
		index[key] = len(out)
		snap.Entries = append([]league.Entry(nil), snap.Entries...)
		out = append(out, snap)
	}
	return out
}

func normalizeLadderValue(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
