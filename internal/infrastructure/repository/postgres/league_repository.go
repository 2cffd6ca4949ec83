package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

// FindOrCreate upserts on the natural key. The no-op DO UPDATE makes
// RETURNING yield the id for an existing row too.
func (r *LeagueRepository) FindOrCreate(ctx context.Context, item league.League) (league.League, error) {
	row := leagueTableModel{Region: item.Region, Queue: item.Queue, Name: item.Name, Tier: item.Tier}
	query, args, err := qb.InsertModel("leagues", row, `ON CONFLICT (region, queue, name, tier)
DO UPDATE SET name = EXCLUDED.name
RETURNING id`)
	if err != nil {
		return league.League{}, fmt.Errorf("build upsert league query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&row.ID); err != nil {
		return league.League{}, fmt.Errorf("upsert league region=%s queue=%s tier=%s name=%s: %w", item.Region, item.Queue, item.Tier, item.Name, err)
	}
	return row.toDomain(), nil
}

func (r *LeagueRepository) ReplaceEntries(ctx context.Context, leagueID int64, entries []league.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace league entries: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("league_entries").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear league entries query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear league entries league_id=%d: %w", leagueID, err)
	}

	if len(entries) > 0 {
		rows := make([]leagueEntryTableModel, 0, len(entries))
		for _, item := range entries {
			rows = append(rows, newLeagueEntryTableModel(leagueID, item))
		}
		for start := 0; start < len(rows); start += catalogInsertChunkSize {
			end := start + catalogInsertChunkSize
			if end > len(rows) {
				end = len(rows)
			}
			query, args, err := qb.InsertModels("league_entries", rows[start:end], "")
			if err != nil {
				return fmt.Errorf("build insert league entries query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return mapWriteError(fmt.Sprintf("insert league entries league_id=%d", leagueID), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace league entries tx: %w", err)
	}
	return nil
}

func (r *LeagueRepository) List(ctx context.Context, filter league.Filter) ([]league.League, error) {
	page, size := normalizePage(filter.Page, filter.PageSize)
	builder := qb.Select(leagueColumns...).From("leagues")
	if filter.Region != "" {
		builder.Where(qb.Eq("region", filter.Region))
	}
	if filter.Queue != "" {
		builder.Where(qb.Eq("queue", filter.Queue))
	}
	if filter.Tier != "" {
		builder.Where(qb.Eq("tier", filter.Tier))
	}
	query, args, err := builder.OrderBy("region", "queue", "tier", "name").Page(page, size).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) Get(ctx context.Context, region, queue, tier, name string) (league.League, bool, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		Where(
			qb.Eq("region", region),
			qb.Eq("queue", queue),
			qb.Eq("tier", tier),
			qb.Eq("name", name),
		).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *LeagueRepository) ListEntries(ctx context.Context, leagueID int64) ([]league.Entry, error) {
	query, args, err := qb.Select(leagueEntryColumns...).From("league_entries").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("league_points DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list league entries query: %w", err)
	}
	return r.selectEntries(ctx, query, args)
}

func (r *LeagueRepository) ListEntriesByPlayerOrTeamID(ctx context.Context, region, playerOrTeamID string) ([]league.Entry, error) {
	query, args, err := qb.Select(prefixColumns("e", leagueEntryColumns)...).From("league_entries e JOIN leagues l ON l.id = e.league_id").
		Where(
			qb.Eq("l.region", region),
			qb.Eq("e.player_or_team_id", playerOrTeamID),
		).
		OrderBy("l.queue", "e.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list league entries by participant query: %w", err)
	}
	return r.selectEntries(ctx, query, args)
}

func (r *LeagueRepository) selectEntries(ctx context.Context, query string, args []any) ([]league.Entry, error) {
	var rows []leagueEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league entries: %w", err)
	}

	out := make([]league.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom("leagues").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete leagues query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete leagues: %w", err)
	}
	return nil
}
