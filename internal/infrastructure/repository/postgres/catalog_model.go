package postgres

import (
	"database/sql"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type championTableModel struct {
	ChampionID int    `db:"champion_id"`
	Key        string `db:"champion_key"`
	Name       string `db:"name"`
	Title      string `db:"title"`
}

type itemTableModel struct {
	ItemID      int            `db:"item_id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	PlainText   sql.NullString `db:"plain_text"`
	Group       sql.NullString `db:"item_group"`
}

type summonerSpellTableModel struct {
	SpellID       int    `db:"spell_id"`
	Key           string `db:"spell_key"`
	Name          string `db:"name"`
	Description   string `db:"description"`
	SummonerLevel int    `db:"summoner_level"`
}

var (
	championColumns      = qb.Columns(championTableModel{})
	itemColumns          = qb.Columns(itemTableModel{})
	summonerSpellColumns = qb.Columns(summonerSpellTableModel{})
)

func newChampionTableModel(item catalog.Champion) championTableModel {
	return championTableModel{ChampionID: item.ChampionID, Key: item.Key, Name: item.Name, Title: item.Title}
}

func (m championTableModel) toDomain() catalog.Champion {
	return catalog.Champion{ChampionID: m.ChampionID, Key: m.Key, Name: m.Name, Title: m.Title}
}

func newItemTableModel(item catalog.Item) itemTableModel {
	return itemTableModel{
		ItemID:      item.ItemID,
		Name:        item.Name,
		Description: item.Description,
		PlainText:   stringPtrToNull(item.PlainText),
		Group:       stringPtrToNull(item.Group),
	}
}

func (m itemTableModel) toDomain() catalog.Item {
	return catalog.Item{
		ItemID:      m.ItemID,
		Name:        m.Name,
		Description: m.Description,
		PlainText:   nullStringPtr(m.PlainText),
		Group:       nullStringPtr(m.Group),
	}
}

func newSummonerSpellTableModel(item catalog.SummonerSpell) summonerSpellTableModel {
	return summonerSpellTableModel{
		SpellID:       item.SpellID,
		Key:           item.Key,
		Name:          item.Name,
		Description:   item.Description,
		SummonerLevel: item.SummonerLevel,
	}
}

func (m summonerSpellTableModel) toDomain() catalog.SummonerSpell {
	return catalog.SummonerSpell{
		SpellID:       m.SpellID,
		Key:           m.Key,
		Name:          m.Name,
		Description:   m.Description,
		SummonerLevel: m.SummonerLevel,
	}
}
