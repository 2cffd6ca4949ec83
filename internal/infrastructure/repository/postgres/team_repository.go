package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByFullID(ctx context.Context, region, fullID string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(
			qb.Eq("region", region),
			qb.Eq("full_id", fullID),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team region=%s full_id=%s: %w", region, fullID, err)
	}
	return row.toDomain(), true, nil
}

// Replace rebuilds one team from scratch. Children go in dependency order:
// team, roster, members, stat details, match history.
func (r *TeamRepository) Replace(ctx context.Context, snapshot team.Snapshot) (team.Team, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.Team{}, fmt.Errorf("begin tx replace team: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("teams").
		Where(
			qb.Eq("region", snapshot.Team.Region),
			qb.Eq("full_id", snapshot.Team.FullID),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build clear team query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return team.Team{}, fmt.Errorf("clear team full_id=%s: %w", snapshot.Team.FullID, err)
	}

	teamRow := newTeamTableModel(snapshot.Team)
	teamID, err := insertReturningID(ctx, tx, "teams", teamRow)
	if err != nil {
		return team.Team{}, mapWriteError(fmt.Sprintf("insert team full_id=%s", snapshot.Team.FullID), err)
	}
	teamRow.ID = teamID

	rosterID, err := insertReturningID(ctx, tx, "team_rosters", teamRosterTableModel{TeamID: teamID, OwnerID: snapshot.Roster.OwnerID})
	if err != nil {
		return team.Team{}, mapWriteError("insert team roster", err)
	}

	if len(snapshot.Members) > 0 {
		rows := make([]teamMemberTableModel, 0, len(snapshot.Members))
		for _, m := range snapshot.Members {
			rows = append(rows, teamMemberTableModel{
				RosterID:   rosterID,
				InviteDate: m.InviteDate,
				JoinDate:   m.JoinDate,
				PlayerID:   m.PlayerID,
				Status:     m.Status,
			})
		}
		if err := insertRows(ctx, tx, "team_member_infos", rows); err != nil {
			return team.Team{}, err
		}
	}

	if len(snapshot.StatDetails) > 0 {
		rows := make([]teamStatDetailTableModel, 0, len(snapshot.StatDetails))
		for _, s := range snapshot.StatDetails {
			rows = append(rows, teamStatDetailTableModel{
				TeamID:             teamID,
				TeamStatType:       s.TeamStatType,
				AverageGamesPlayed: s.AverageGamesPlayed,
				Wins:               s.Wins,
				Losses:             s.Losses,
			})
		}
		if err := insertRows(ctx, tx, "team_stat_details", rows); err != nil {
			return team.Team{}, err
		}
	}

	if len(snapshot.MatchHistory) > 0 {
		rows := make([]teamMatchHistoryTableModel, 0, len(snapshot.MatchHistory))
		for _, h := range snapshot.MatchHistory {
			rows = append(rows, teamMatchHistoryTableModel{
				TeamID:            teamID,
				Assists:           h.Assists,
				Date:              h.Date,
				Deaths:            h.Deaths,
				GameID:            h.GameID,
				GameMode:          h.GameMode,
				Invalid:           h.Invalid,
				Kills:             h.Kills,
				MapID:             h.MapID,
				OpposingTeamKills: h.OpposingTeamKills,
				OpposingTeamName:  h.OpposingTeamName,
				Win:               h.Win,
			})
		}
		if err := insertRows(ctx, tx, "team_match_histories", rows); err != nil {
			return team.Team{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return team.Team{}, mapWriteError("commit replace team tx", err)
	}
	return teamRow.toDomain(), nil
}

func insertReturningID(ctx context.Context, tx *sqlx.Tx, table string, model any) (int64, error) {
	query, args, err := qb.InsertModel(table, model, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert %s query: %w", table, err)
	}
	var id int64
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func insertRows[T any](ctx context.Context, tx *sqlx.Tx, table string, rows []T) error {
	query, args, err := qb.InsertModels(table, rows, "")
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError(fmt.Sprintf("insert %s rows=%d", table, len(rows)), err)
	}
	return nil
}

func (r *TeamRepository) GetSnapshot(ctx context.Context, region, fullID string) (team.Snapshot, bool, error) {
	item, ok, err := r.GetByFullID(ctx, region, fullID)
	if err != nil || !ok {
		return team.Snapshot{}, ok, err
	}

	out := team.Snapshot{Team: item}

	rosterQuery, rosterArgs, err := qb.Select(teamRosterColumns...).From("team_rosters").
		Where(qb.Eq("team_id", item.ID)).
		ToSQL()
	if err != nil {
		return team.Snapshot{}, false, fmt.Errorf("build get team roster query: %w", err)
	}
	var roster teamRosterTableModel
	if err := r.db.GetContext(ctx, &roster, rosterQuery, rosterArgs...); err != nil && !isNotFound(err) {
		return team.Snapshot{}, false, fmt.Errorf("get team roster team_id=%d: %w", item.ID, err)
	}
	out.Roster = roster.toDomain()

	if roster.ID > 0 {
		query, args, err := qb.Select(teamMemberColumns...).From("team_member_infos").
			Where(qb.Eq("roster_id", roster.ID)).
			OrderBy("join_date", "id").
			ToSQL()
		if err != nil {
			return team.Snapshot{}, false, fmt.Errorf("build list team members query: %w", err)
		}
		var rows []teamMemberTableModel
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return team.Snapshot{}, false, fmt.Errorf("list team members roster_id=%d: %w", roster.ID, err)
		}
		for _, row := range rows {
			out.Members = append(out.Members, row.toDomain())
		}
	}

	statQuery, statArgs, err := qb.Select(teamStatDetailColumns...).From("team_stat_details").
		Where(qb.Eq("team_id", item.ID)).
		OrderBy("team_stat_type").
		ToSQL()
	if err != nil {
		return team.Snapshot{}, false, fmt.Errorf("build list team stat details query: %w", err)
	}
	var stats []teamStatDetailTableModel
	if err := r.db.SelectContext(ctx, &stats, statQuery, statArgs...); err != nil {
		return team.Snapshot{}, false, fmt.Errorf("list team stat details team_id=%d: %w", item.ID, err)
	}
	for _, row := range stats {
		out.StatDetails = append(out.StatDetails, row.toDomain())
	}

	historyQuery, historyArgs, err := qb.Select(teamMatchHistoryColumns...).From("team_match_histories").
		Where(qb.Eq("team_id", item.ID)).
		OrderBy("date DESC", "id").
		ToSQL()
	if err != nil {
		return team.Snapshot{}, false, fmt.Errorf("build list team match history query: %w", err)
	}
	var history []teamMatchHistoryTableModel
	if err := r.db.SelectContext(ctx, &history, historyQuery, historyArgs...); err != nil {
		return team.Snapshot{}, false, fmt.Errorf("list team match history team_id=%d: %w", item.ID, err)
	}
	for _, row := range history {
		out.MatchHistory = append(out.MatchHistory, row.toDomain())
	}

	return out, true, nil
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	page, size := normalizePage(filter.Page, filter.PageSize)
	builder := qb.Select(prefixColumns("t", teamColumns)...).From("teams t")
	if filter.Region != "" {
		builder.Where(qb.Eq("t.region", filter.Region))
	}
	if filter.MemberID > 0 {
		builder.Where(qb.Expr(`EXISTS (
    SELECT 1 FROM team_rosters r
    JOIN team_member_infos m ON m.roster_id = r.id
    WHERE r.team_id = t.id AND m.player_id = ?
)`, filter.MemberID))
	}
	query, args, err := builder.OrderBy("t.name", "t.id").Page(page, size).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom("teams").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete teams query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete teams: %w", err)
	}
	return nil
}
