package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/game"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) CreateRawStat(ctx context.Context, item *game.RawStat) error {
	if item == nil {
		return fmt.Errorf("raw stat is required")
	}

	query, args, err := qb.InsertModel("raw_stats", newRawStatTableModel(*item), "RETURNING id")
	if err != nil {
		return fmt.Errorf("build insert raw stat query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return mapWriteError("insert raw stat", err)
	}
	item.ID = id
	return nil
}

// DeleteRawStat removes the statistics row; games and game_players cascade.
func (r *GameRepository) DeleteRawStat(ctx context.Context, rawStatID int64) error {
	query, args, err := qb.DeleteFrom("raw_stats").Where(qb.Eq("id", rawStatID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete raw stat query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete raw stat id=%d: %w", rawStatID, err)
	}
	return nil
}

func (r *GameRepository) CreateGame(ctx context.Context, item *game.Game) error {
	if item == nil {
		return fmt.Errorf("game is required")
	}

	query, args, err := qb.InsertModel("games", newGameTableModel(*item), "RETURNING id")
	if err != nil {
		return fmt.Errorf("build insert game query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return mapWriteError(fmt.Sprintf("insert game game_id=%d summoner_pk=%d", item.GameID, item.SummonerPK), err)
	}
	item.ID = id
	return nil
}

func (r *GameRepository) CreatePlayers(ctx context.Context, items []game.Player) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]gamePlayerTableModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, newGamePlayerTableModel(item))
	}
	query, args, err := qb.InsertModels("game_players", rows, "")
	if err != nil {
		return fmt.Errorf("build insert game players query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError(fmt.Sprintf("insert game players game_pk=%d", items[0].GamePK), err)
	}
	return nil
}

func (r *GameRepository) ListBySummoner(ctx context.Context, summonerPK int64, page, pageSize int) ([]game.Game, error) {
	page, pageSize = normalizePage(page, pageSize)
	query, args, err := qb.Select(gameColumns...).From("games").
		Where(qb.Eq("summoner_pk", summonerPK)).
		OrderBy("create_date DESC", "id DESC").
		Page(page, pageSize).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games by summoner query: %w", err)
	}
	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) ListByGameID(ctx context.Context, region string, gameID int64) ([]game.Game, error) {
	query, args, err := qb.Select(gameColumns...).From("games").
		Where(
			qb.Eq("region", region),
			qb.Eq("game_id", gameID),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games by game id query: %w", err)
	}
	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) selectGames(ctx context.Context, query string, args []any) ([]game.Game, error) {
	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GameRepository) GetRawStat(ctx context.Context, rawStatID int64) (game.RawStat, bool, error) {
	query, args, err := qb.Select(rawStatColumns...).From("raw_stats").
		Where(qb.Eq("id", rawStatID)).
		ToSQL()
	if err != nil {
		return game.RawStat{}, false, fmt.Errorf("build get raw stat query: %w", err)
	}

	var row rawStatTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.RawStat{}, false, nil
		}
		return game.RawStat{}, false, fmt.Errorf("get raw stat id=%d: %w", rawStatID, err)
	}
	return row.toDomain(), true, nil
}

func (r *GameRepository) ListPlayers(ctx context.Context, gamePK int64) ([]game.Player, error) {
	query, args, err := qb.Select(gamePlayerColumns...).From("game_players").
		Where(qb.Eq("game_pk", gamePK)).
		OrderBy("team_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list game players query: %w", err)
	}

	var rows []gamePlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list game players game_pk=%d: %w", gamePK, err)
	}

	out := make([]game.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// DeleteAll clears match history. Deleting raw_stats cascades to games and
// game_players.
func (r *GameRepository) DeleteAll(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete games: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"game_players", "games", "raw_stats"} {
		query, args, err := qb.DeleteFrom(table).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete games tx: %w", err)
	}
	return nil
}
