package postgres

import (
	"database/sql"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type leagueTableModel struct {
	ID     int64  `db:"id,readonly"`
	Region string `db:"region"`
	Queue  string `db:"queue"`
	Name   string `db:"name"`
	Tier   string `db:"tier"`
}

type leagueEntryTableModel struct {
	ID               int64          `db:"id,readonly"`
	LeagueID         int64          `db:"league_id"`
	Division         string         `db:"division"`
	IsFreshBlood     bool           `db:"is_fresh_blood"`
	IsHotStreak      bool           `db:"is_hot_streak"`
	IsInactive       bool           `db:"is_inactive"`
	IsVeteran        bool           `db:"is_veteran"`
	LeaguePoints     int            `db:"league_points"`
	PlayerOrTeamID   string         `db:"player_or_team_id"`
	PlayerOrTeamName string         `db:"player_or_team_name"`
	Wins             int            `db:"wins"`
	SeriesLosses     sql.NullInt16  `db:"series_losses"`
	SeriesProgress   sql.NullString `db:"series_progress"`
	SeriesTarget     sql.NullInt16  `db:"series_target"`
	SeriesWins       sql.NullInt16  `db:"series_wins"`
}

var (
	leagueColumns      = qb.Columns(leagueTableModel{})
	leagueEntryColumns = qb.Columns(leagueEntryTableModel{})
)

func (m leagueTableModel) toDomain() league.League {
	return league.League{ID: m.ID, Region: m.Region, Queue: m.Queue, Name: m.Name, Tier: m.Tier}
}

func newLeagueEntryTableModel(leagueID int64, item league.Entry) leagueEntryTableModel {
	row := leagueEntryTableModel{
		LeagueID:         leagueID,
		Division:         item.Division,
		IsFreshBlood:     item.IsFreshBlood,
		IsHotStreak:      item.IsHotStreak,
		IsInactive:       item.IsInactive,
		IsVeteran:        item.IsVeteran,
		LeaguePoints:     item.LeaguePoints,
		PlayerOrTeamID:   item.PlayerOrTeamID,
		PlayerOrTeamName: item.PlayerOrTeamName,
		Wins:             item.Wins,
	}
	if series := item.MiniSeries; series != nil {
		row.SeriesLosses = sql.NullInt16{Int16: int16(series.Losses), Valid: true}
		row.SeriesProgress = sql.NullString{String: series.Progress, Valid: true}
		row.SeriesTarget = sql.NullInt16{Int16: int16(series.Target), Valid: true}
		row.SeriesWins = sql.NullInt16{Int16: int16(series.Wins), Valid: true}
	}
	return row
}

func (m leagueEntryTableModel) toDomain() league.Entry {
	out := league.Entry{
		ID:               m.ID,
		LeagueID:         m.LeagueID,
		Division:         m.Division,
		IsFreshBlood:     m.IsFreshBlood,
		IsHotStreak:      m.IsHotStreak,
		IsInactive:       m.IsInactive,
		IsVeteran:        m.IsVeteran,
		LeaguePoints:     m.LeaguePoints,
		PlayerOrTeamID:   m.PlayerOrTeamID,
		PlayerOrTeamName: m.PlayerOrTeamName,
		Wins:             m.Wins,
	}
	if m.SeriesTarget.Valid || m.SeriesProgress.Valid {
		out.MiniSeries = &league.MiniSeries{
			Losses:   int(m.SeriesLosses.Int16),
			Progress: m.SeriesProgress.String,
			Target:   int(m.SeriesTarget.Int16),
			Wins:     int(m.SeriesWins.Int16),
		}
	}
	return out
}
