package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type SummonerRepository struct {
	db *sqlx.DB
}

func NewSummonerRepository(db *sqlx.DB) *SummonerRepository {
	return &SummonerRepository{db: db}
}

func (r *SummonerRepository) GetByNormalizedName(ctx context.Context, region, normalizedName string) (summoner.Summoner, bool, error) {
	// A rename can leave an older row with the same normalized name; the most
	// recently synced one wins.
	query, args, err := qb.Select(summonerColumns...).From("summoners").
		Where(
			qb.Eq("region", region),
			qb.Eq("normalized_name", normalizedName),
		).
		OrderBy("last_synced_at DESC", "id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return summoner.Summoner{}, false, fmt.Errorf("build get summoner by name query: %w", err)
	}

	var row summonerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return summoner.Summoner{}, false, nil
		}
		return summoner.Summoner{}, false, fmt.Errorf("get summoner by name: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *SummonerRepository) GetBySummonerID(ctx context.Context, region string, summonerID int64) (summoner.Summoner, bool, error) {
	query, args, err := qb.Select(summonerColumns...).From("summoners").
		Where(
			qb.Eq("region", region),
			qb.Eq("summoner_id", summonerID),
		).
		ToSQL()
	if err != nil {
		return summoner.Summoner{}, false, fmt.Errorf("build get summoner by id query: %w", err)
	}

	var row summonerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return summoner.Summoner{}, false, nil
		}
		return summoner.Summoner{}, false, fmt.Errorf("get summoner by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *SummonerRepository) ListBySummonerIDs(ctx context.Context, region string, summonerIDs []int64) ([]summoner.Summoner, error) {
	if len(summonerIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select(summonerColumns...).From("summoners").
		Where(
			qb.Eq("region", region),
			qb.In("summoner_id", qb.Values(summonerIDs)),
		).
		OrderBy("summoner_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list summoners by ids query: %w", err)
	}

	var rows []summonerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list summoners by ids: %w", err)
	}

	out := make([]summoner.Summoner, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SummonerRepository) List(ctx context.Context, filter summoner.Filter) ([]summoner.Summoner, error) {
	page, size := normalizePage(filter.Page, filter.PageSize)
	builder := qb.Select(summonerColumns...).From("summoners")
	if filter.Region != "" {
		builder.Where(qb.Eq("region", filter.Region))
	}
	query, args, err := builder.OrderBy("name", "id").Page(page, size).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list summoners query: %w", err)
	}

	var rows []summonerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list summoners: %w", err)
	}

	out := make([]summoner.Summoner, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SummonerRepository) Create(ctx context.Context, item *summoner.Summoner) error {
	if item == nil {
		return fmt.Errorf("summoner is required")
	}

	query, args, err := qb.InsertModel("summoners", newSummonerTableModel(*item), "RETURNING id")
	if err != nil {
		return fmt.Errorf("build insert summoner query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return mapWriteError(fmt.Sprintf("insert summoner summoner_id=%d region=%s", item.SummonerID, item.Region), err)
	}
	item.ID = id
	return nil
}

func (r *SummonerRepository) Update(ctx context.Context, item summoner.Summoner) error {
	row := newSummonerTableModel(item)
	query, args, err := qb.Update("summoners").
		Set("summoner_id", row.SummonerID).
		Set("name", row.Name).
		Set("normalized_name", row.NormalizedName).
		Set("profile_icon_id", row.ProfileIconID).
		Set("summoner_level", row.SummonerLevel).
		Set("revision_date", row.RevisionDate).
		Set("last_synced_at", row.LastSyncedAt).
		Where(qb.Eq("id", row.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update summoner query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(fmt.Sprintf("update summoner id=%d", item.ID), err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update summoner id=%d: no rows affected", item.ID)
	}
	return nil
}

func (r *SummonerRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom("summoners").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete summoners query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete summoners: %w", err)
	}
	return nil
}
