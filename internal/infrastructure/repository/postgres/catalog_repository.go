package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

const catalogInsertChunkSize = 250

type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ReplaceChampions(ctx context.Context, items []catalog.Champion) error {
	rows := make([]championTableModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, newChampionTableModel(item))
	}
	return replaceTable(ctx, r.db, "champions", rows)
}

func (r *CatalogRepository) ReplaceItems(ctx context.Context, items []catalog.Item) error {
	rows := make([]itemTableModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, newItemTableModel(item))
	}
	return replaceTable(ctx, r.db, "items", rows)
}

func (r *CatalogRepository) ReplaceSummonerSpells(ctx context.Context, items []catalog.SummonerSpell) error {
	rows := make([]summonerSpellTableModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, newSummonerSpellTableModel(item))
	}
	return replaceTable(ctx, r.db, "summoner_spells", rows)
}

// replaceTable clears table and inserts rows in one transaction.
func replaceTable[T any](ctx context.Context, db *sqlx.DB, table string, rows []T) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace %s: %w", table, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom(table).ToSQL()
	if err != nil {
		return fmt.Errorf("build clear %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	for start := 0; start < len(rows); start += catalogInsertChunkSize {
		end := start + catalogInsertChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		query, args, err := qb.InsertModels(table, rows[start:end], "")
		if err != nil {
			return fmt.Errorf("build insert %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return mapWriteError(fmt.Sprintf("insert %s rows=%d", table, end-start), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace %s tx: %w", table, err)
	}
	return nil
}

func (r *CatalogRepository) ListChampions(ctx context.Context) ([]catalog.Champion, error) {
	return r.listChampions(ctx)
}

func (r *CatalogRepository) ListChampionsByIDs(ctx context.Context, ids []int) ([]catalog.Champion, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.listChampions(ctx, qb.In("champion_id", qb.Values(ids)))
}

func (r *CatalogRepository) listChampions(ctx context.Context, where ...qb.Condition) ([]catalog.Champion, error) {
	query, args, err := qb.Select(championColumns...).From("champions").Where(where...).OrderBy("name").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list champions query: %w", err)
	}

	var rows []championTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list champions: %w", err)
	}

	out := make([]catalog.Champion, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CatalogRepository) GetChampionByName(ctx context.Context, name string) (catalog.Champion, bool, error) {
	query, args, err := qb.Select(championColumns...).From("champions").
		Where(qb.Expr("LOWER(name) = LOWER(?)", name)).
		Limit(1).
		ToSQL()
	if err != nil {
		return catalog.Champion{}, false, fmt.Errorf("build get champion by name query: %w", err)
	}

	var row championTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return catalog.Champion{}, false, nil
		}
		return catalog.Champion{}, false, fmt.Errorf("get champion by name: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *CatalogRepository) ListItems(ctx context.Context) ([]catalog.Item, error) {
	query, args, err := qb.Select(itemColumns...).From("items").OrderBy("name", "item_id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list items query: %w", err)
	}

	var rows []itemTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	out := make([]catalog.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CatalogRepository) GetItemByName(ctx context.Context, name string) (catalog.Item, bool, error) {
	query, args, err := qb.Select(itemColumns...).From("items").
		Where(qb.Expr("LOWER(name) = LOWER(?)", name)).
		OrderBy("item_id").
		Limit(1).
		ToSQL()
	if err != nil {
		return catalog.Item{}, false, fmt.Errorf("build get item by name query: %w", err)
	}

	var row itemTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return catalog.Item{}, false, nil
		}
		return catalog.Item{}, false, fmt.Errorf("get item by name: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *CatalogRepository) ListSummonerSpells(ctx context.Context) ([]catalog.SummonerSpell, error) {
	return r.listSummonerSpells(ctx)
}

func (r *CatalogRepository) ListSummonerSpellsByIDs(ctx context.Context, ids []int) ([]catalog.SummonerSpell, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.listSummonerSpells(ctx, qb.In("spell_id", qb.Values(ids)))
}

func (r *CatalogRepository) listSummonerSpells(ctx context.Context, where ...qb.Condition) ([]catalog.SummonerSpell, error) {
	query, args, err := qb.Select(summonerSpellColumns...).From("summoner_spells").Where(where...).OrderBy("name").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list summoner spells query: %w", err)
	}

	var rows []summonerSpellTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list summoner spells: %w", err)
	}

	out := make([]catalog.SummonerSpell, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CatalogRepository) GetSummonerSpellByName(ctx context.Context, name string) (catalog.SummonerSpell, bool, error) {
	query, args, err := qb.Select(summonerSpellColumns...).From("summoner_spells").
		Where(qb.Expr("LOWER(name) = LOWER(?)", name)).
		Limit(1).
		ToSQL()
	if err != nil {
		return catalog.SummonerSpell{}, false, fmt.Errorf("build get summoner spell by name query: %w", err)
	}

	var row summonerSpellTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return catalog.SummonerSpell{}, false, nil
		}
		return catalog.SummonerSpell{}, false, fmt.Errorf("get summoner spell by name: %w", err)
	}
	return row.toDomain(), true, nil
}
