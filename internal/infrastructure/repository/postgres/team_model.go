package postgres

import (
	"database/sql"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type teamTableModel struct {
	ID                            int64         `db:"id,readonly"`
	Region                        string        `db:"region"`
	FullID                        string        `db:"full_id"`
	Name                          string        `db:"name"`
	Tag                           string        `db:"tag"`
	Status                        string        `db:"status"`
	CreateDate                    int64         `db:"create_date"`
	LastGameDate                  sql.NullInt64 `db:"last_game_date"`
	LastJoinedRankedTeamQueueDate int64         `db:"last_joined_ranked_team_queue_date"`
	ModifyDate                    int64         `db:"modify_date"`
	LastJoinDate                  int64         `db:"last_join_date"`
	SecondLastJoinDate            int64         `db:"second_last_join_date"`
	ThirdLastJoinDate             int64         `db:"third_last_join_date"`
}

type teamRosterTableModel struct {
	ID      int64 `db:"id,readonly"`
	TeamID  int64 `db:"team_id"`
	OwnerID int64 `db:"owner_id"`
}

type teamMemberTableModel struct {
	ID         int64  `db:"id,readonly"`
	RosterID   int64  `db:"roster_id"`
	InviteDate int64  `db:"invite_date"`
	JoinDate   int64  `db:"join_date"`
	PlayerID   int64  `db:"player_id"`
	Status     string `db:"status"`
}

type teamStatDetailTableModel struct {
	ID                 int64  `db:"id,readonly"`
	TeamID             int64  `db:"team_id"`
	TeamStatType       string `db:"team_stat_type"`
	AverageGamesPlayed int    `db:"average_games_played"`
	Wins               int    `db:"wins"`
	Losses             int    `db:"losses"`
}

type teamMatchHistoryTableModel struct {
	ID                int64  `db:"id,readonly"`
	TeamID            int64  `db:"team_id"`
	Assists           int    `db:"assists"`
	Date              int64  `db:"date"`
	Deaths            int    `db:"deaths"`
	GameID            int64  `db:"game_id"`
	GameMode          string `db:"game_mode"`
	Invalid           bool   `db:"invalid"`
	Kills             int    `db:"kills"`
	MapID             int    `db:"map_id"`
	OpposingTeamKills int    `db:"opposing_team_kills"`
	OpposingTeamName  string `db:"opposing_team_name"`
	Win               bool   `db:"win"`
}

var (
	teamColumns             = qb.Columns(teamTableModel{})
	teamRosterColumns       = qb.Columns(teamRosterTableModel{})
	teamMemberColumns       = qb.Columns(teamMemberTableModel{})
	teamStatDetailColumns   = qb.Columns(teamStatDetailTableModel{})
	teamMatchHistoryColumns = qb.Columns(teamMatchHistoryTableModel{})
)

func newTeamTableModel(item team.Team) teamTableModel {
	return teamTableModel{
		Region:                        item.Region,
		FullID:                        item.FullID,
		Name:                          item.Name,
		Tag:                           item.Tag,
		Status:                        item.Status,
		CreateDate:                    item.CreateDate,
		LastGameDate:                  int64PtrToNull(item.LastGameDate),
		LastJoinedRankedTeamQueueDate: item.LastJoinedRankedTeamQueueDate,
		ModifyDate:                    item.ModifyDate,
		LastJoinDate:                  item.LastJoinDate,
		SecondLastJoinDate:            item.SecondLastJoinDate,
		ThirdLastJoinDate:             item.ThirdLastJoinDate,
	}
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:                            m.ID,
		Region:                        m.Region,
		FullID:                        m.FullID,
		Name:                          m.Name,
		Tag:                           m.Tag,
		Status:                        m.Status,
		CreateDate:                    m.CreateDate,
		LastGameDate:                  nullInt64Ptr(m.LastGameDate),
		LastJoinedRankedTeamQueueDate: m.LastJoinedRankedTeamQueueDate,
		ModifyDate:                    m.ModifyDate,
		LastJoinDate:                  m.LastJoinDate,
		SecondLastJoinDate:            m.SecondLastJoinDate,
		ThirdLastJoinDate:             m.ThirdLastJoinDate,
	}
}

func (m teamRosterTableModel) toDomain() team.Roster {
	return team.Roster{ID: m.ID, TeamID: m.TeamID, OwnerID: m.OwnerID}
}

func (m teamMemberTableModel) toDomain() team.MemberInfo {
	return team.MemberInfo{
		ID:         m.ID,
		RosterID:   m.RosterID,
		InviteDate: m.InviteDate,
		JoinDate:   m.JoinDate,
		PlayerID:   m.PlayerID,
		Status:     m.Status,
	}
}

func (m teamStatDetailTableModel) toDomain() team.StatDetail {
	return team.StatDetail{
		ID:                 m.ID,
		TeamID:             m.TeamID,
		TeamStatType:       m.TeamStatType,
		AverageGamesPlayed: m.AverageGamesPlayed,
		Wins:               m.Wins,
		Losses:             m.Losses,
	}
}

func (m teamMatchHistoryTableModel) toDomain() team.MatchHistorySummary {
	return team.MatchHistorySummary{
		ID:                m.ID,
		TeamID:            m.TeamID,
		Assists:           m.Assists,
		Date:              m.Date,
		Deaths:            m.Deaths,
		GameID:            m.GameID,
		GameMode:          m.GameMode,
		Invalid:           m.Invalid,
		Kills:             m.Kills,
		MapID:             m.MapID,
		OpposingTeamKills: m.OpposingTeamKills,
		OpposingTeamName:  m.OpposingTeamName,
		Win:               m.Win,
	}
}
