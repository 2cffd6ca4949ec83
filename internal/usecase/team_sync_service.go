package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
)

type TeamSyncResult struct {
	Created int
	Rebuilt int
	Skipped int
}

type TeamFilter struct {
	Region     string
	MemberName string
	Page       int
	PageSize   int
}

type TeamSyncService struct {
	repo      team.Repository
	summoners summoner.Repository
	provider  RiotProvider
	logger    *logging.Logger
}

func NewTeamSyncService(repo team.Repository, summoners summoner.Repository, provider RiotProvider, logger *logging.Logger) *TeamSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamSyncService{repo: repo, summoners: summoners, provider: provider, logger: logger}
}

// SyncTeams rebuilds every team the summoner belongs to from the upstream
// payload.
func (s *TeamSyncService) SyncTeams(ctx context.Context, summonerID int64, rawRegion string) (TeamSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSyncService.SyncTeams")
	defer span.End()

	reg, err := parseRegion(rawRegion)
	if err != nil {
		return TeamSyncResult{}, err
	}
	if s.provider == nil {
		return TeamSyncResult{}, fmt.Errorf("%w: riot provider is not configured", ErrDependencyUnavailable)
	}

	snapshots, err := s.provider.FetchTeamsBySummonerID(ctx, reg, summonerID)
	if err != nil {
		return TeamSyncResult{}, fmt.Errorf("fetch teams summoner_id=%d region=%s: %w", summonerID, reg, err)
	}

	result := TeamSyncResult{}
	for _, snap := range snapshots {
		snap.Team.Region = reg

		_, existed, err := s.repo.GetByFullID(ctx, reg, snap.Team.FullID)
		if err != nil {
			return result, fmt.Errorf("get team full_id=%s: %w", snap.Team.FullID, err)
		}

		if _, err := s.repo.Replace(ctx, snap); err != nil {
			if errors.Is(err, ErrDuplicateKey) {
				s.logger.InfoContext(ctx, "team rebuilt concurrently, skipping", "region", reg, "full_id", snap.Team.FullID)
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("replace team full_id=%s: %w", snap.Team.FullID, err)
		}

		if existed {
			result.Rebuilt++
		} else {
			result.Created++
		}
	}

	s.logger.InfoContext(ctx, "teams synced",
		"region", reg,
		"summoner_id", summonerID,
		"created", result.Created,
		"rebuilt", result.Rebuilt,
		"skipped", result.Skipped,
	)
	return result, nil
}

// List filters by member through the local identity cache. An unknown member
// yields an empty list.
func (s *TeamSyncService) List(ctx context.Context, filter TeamFilter) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSyncService.List")
	defer span.End()

	query := team.Filter{Page: filter.Page, PageSize: filter.PageSize}
	if filter.Region != "" {
		reg, err := parseRegion(filter.Region)
		if err != nil {
			return nil, err
		}
		query.Region = reg
	}

	if member := summoner.NormalizeName(strings.TrimSpace(filter.MemberName)); member != "" {
		if query.Region == "" {
			return nil, fmt.Errorf("%w: region is required when filtering by member", ErrInvalidInput)
		}
		item, found, err := s.summoners.GetByNormalizedName(ctx, query.Region, member)
		if err != nil {
			return nil, fmt.Errorf("get member region=%s name=%s: %w", query.Region, member, err)
		}
		if !found {
			return []team.Team{}, nil
		}
		query.MemberID = item.SummonerID
	}

	items, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamSyncService) Get(ctx context.Context, rawRegion, fullID string) (team.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSyncService.Get")
	defer span.End()

	reg, err := parseRegion(rawRegion)
	if err != nil {
		return team.Snapshot{}, err
	}
	fullID = strings.TrimSpace(fullID)
	if fullID == "" {
		return team.Snapshot{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	snap, found, err := s.repo.GetSnapshot(ctx, reg, fullID)
	if err != nil {
		return team.Snapshot{}, fmt.Errorf("get team full_id=%s: %w", fullID, err)
	}
	if !found {
		return team.Snapshot{}, fmt.Errorf("%w: team region=%s full_id=%s", ErrNotFound, reg, fullID)
	}
	return snap, nil
}

func (s *TeamSyncService) Reset(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete teams: %w", err)
	}
	s.logger.WarnContext(ctx, "teams reset")
	return nil
}
