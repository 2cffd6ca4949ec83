package postgres

import (
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type summonerTableModel struct {
	ID             int64     `db:"id,readonly"`
	SummonerID     int64     `db:"summoner_id"`
	Name           string    `db:"name"`
	NormalizedName string    `db:"normalized_name"`
	Region         string    `db:"region"`
	ProfileIconID  int       `db:"profile_icon_id"`
	SummonerLevel  int       `db:"summoner_level"`
	RevisionDate   int64     `db:"revision_date"`
	LastSyncedAt   time.Time `db:"last_synced_at"`
}

var summonerColumns = qb.Columns(summonerTableModel{})

func newSummonerTableModel(item summoner.Summoner) summonerTableModel {
	return summonerTableModel{
		ID:             item.ID,
		SummonerID:     item.SummonerID,
		Name:           item.Name,
		NormalizedName: item.NormalizedName,
		Region:         item.Region,
		ProfileIconID:  item.ProfileIconID,
		SummonerLevel:  item.SummonerLevel,
		RevisionDate:   item.RevisionDate,
		LastSyncedAt:   item.LastSyncedAt.UTC(),
	}
}

func (m summonerTableModel) toDomain() summoner.Summoner {
	return summoner.Summoner{
		ID:             m.ID,
		SummonerID:     m.SummonerID,
		Name:           m.Name,
		NormalizedName: m.NormalizedName,
		Region:         m.Region,
		ProfileIconID:  m.ProfileIconID,
		SummonerLevel:  m.SummonerLevel,
		RevisionDate:   m.RevisionDate,
		LastSyncedAt:   m.LastSyncedAt,
	}
}
