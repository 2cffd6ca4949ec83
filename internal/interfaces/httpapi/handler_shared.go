package httpapi

import (
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/game"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/task"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
	"github.com/riskibarqy/lol-stats-sync/internal/usecase"
)

type summonerDTO struct {
	SummonerID    int64  `json:"summonerId"`
	Name          string `json:"name"`
	Region        string `json:"region"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
	RevisionDate  int64  `json:"revisionDate"`
	LastSyncedAt  string `json:"lastSyncedAt"`
}

type resolveDTO struct {
	Summoner summonerDTO `json:"summoner"`
	Outcome  string      `json:"outcome"`
	TaskID   string      `json:"taskId,omitempty"`
}

type taskAcceptedDTO struct {
	TaskID string `json:"taskId"`
	State  string `json:"state"`
}

type taskDTO struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	State        string         `json:"state"`
	Payload      map[string]any `json:"payload,omitempty"`
	Result       map[string]any `json:"result,omitempty"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
	Attempts     int            `json:"attempts"`
	CreatedAt    string         `json:"createdAt"`
	UpdatedAt    string         `json:"updatedAt"`
	FinishedAt   string         `json:"finishedAt,omitempty"`
}

type championDTO struct {
	ChampionID int    `json:"championId"`
	Key        string `json:"key"`
	Name       string `json:"name"`
	Title      string `json:"title"`
}

type itemDTO struct {
	ItemID      int     `json:"itemId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PlainText   *string `json:"plainText"`
	Group       *string `json:"group"`
}

type summonerSpellDTO struct {
	SpellID       int    `json:"spellId"`
	Key           string `json:"key"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SummonerLevel int    `json:"summonerLevel"`
}

type gameDTO struct {
	GameID      int64           `json:"gameId"`
	SummonerID  int64           `json:"summonerId"`
	ChampionID  int             `json:"championId"`
	ChampionKey string          `json:"championKey"`
	CreateDate  int64           `json:"createDate"`
	GameMode    string          `json:"gameMode"`
	GameType    string          `json:"gameType"`
	SubType     string          `json:"subType"`
	Invalid     bool            `json:"invalid"`
	IPEarned    int             `json:"ipEarned"`
	Level       int             `json:"level"`
	MapID       int             `json:"mapId"`
	Spell1ID    int             `json:"spell1"`
	Spell2ID    int             `json:"spell2"`
	TeamID      int             `json:"teamId"`
	Region      string          `json:"region"`
	LastUpdate  string          `json:"lastUpdate"`
	Stats       rawStatDTO      `json:"stats"`
	FellowPlays []gamePlayerDTO `json:"fellowPlayers"`
}

type gamePlayerDTO struct {
	SummonerID int64 `json:"summonerId"`
	ChampionID int   `json:"championId"`
	TeamID     int   `json:"teamId"`
}

// rawStatDTO mirrors game.RawStat field for field so a conversion is enough.
// Unreported counters stay null.
type rawStatDTO struct {
	ID                              int64 `json:"id"`
	Assists                         *int  `json:"assists"`
	BarracksKilled                  *int  `json:"barracksKilled"`
	ChampionsKilled                 *int  `json:"championsKilled"`
	CombatPlayerScore               *int  `json:"combatPlayerScore"`
	ConsumablesPurchased            *int  `json:"consumablesPurchased"`
	DamageDealtPlayer               *int  `json:"damageDealtPlayer"`
	DoubleKills                     *int  `json:"doubleKills"`
	FirstBlood                      *int  `json:"firstBlood"`
	Gold                            *int  `json:"gold"`
	GoldEarned                      *int  `json:"goldEarned"`
	GoldSpent                       *int  `json:"goldSpent"`
	Item0                           *int  `json:"item0"`
	Item1                           *int  `json:"item1"`
	Item2                           *int  `json:"item2"`
	Item3                           *int  `json:"item3"`
	Item4                           *int  `json:"item4"`
	Item5                           *int  `json:"item5"`
	Item6                           *int  `json:"item6"`
	ItemsPurchased                  *int  `json:"itemsPurchased"`
	KillingSprees                   *int  `json:"killingSprees"`
	LargestCriticalStrike           *int  `json:"largestCriticalStrike"`
	LargestKillingSpree             *int  `json:"largestKillingSpree"`
	LargestMultiKill                *int  `json:"largestMultiKill"`
	LegendaryItemsCreated           *int  `json:"legendaryItemsCreated"`
	Level                           *int  `json:"level"`
	MagicDamageDealtPlayer          *int  `json:"magicDamageDealtPlayer"`
	MagicDamageDealtToChampions     *int  `json:"magicDamageDealtToChampions"`
	MagicDamageTaken                *int  `json:"magicDamageTaken"`
	MinionsDenied                   *int  `json:"minionsDenied"`
	MinionsKilled                   *int  `json:"minionsKilled"`
	NeutralMinionsKilled            *int  `json:"neutralMinionsKilled"`
	NeutralMinionsKilledEnemyJungle *int  `json:"neutralMinionsKilledEnemyJungle"`
	NeutralMinionsKilledYourJungle  *int  `json:"neutralMinionsKilledYourJungle"`
	NexusKilled                     *bool `json:"nexusKilled"`
	NodeCapture                     *int  `json:"nodeCapture"`
	NodeCaptureAssist               *int  `json:"nodeCaptureAssist"`
	NodeNeutralize                  *int  `json:"nodeNeutralize"`
	NodeNeutralizeAssist            *int  `json:"nodeNeutralizeAssist"`
	NumDeaths                       *int  `json:"numDeaths"`
	NumItemsBought                  *int  `json:"numItemsBought"`
	ObjectivePlayerScore            *int  `json:"objectivePlayerScore"`
	PentaKills                      *int  `json:"pentaKills"`
	PhysicalDamageDealtPlayer       *int  `json:"physicalDamageDealtPlayer"`
	PhysicalDamageDealtToChampions  *int  `json:"physicalDamageDealtToChampions"`
	PhysicalDamageTaken             *int  `json:"physicalDamageTaken"`
	QuadraKills                     *int  `json:"quadraKills"`
	SightWardsBought                *int  `json:"sightWardsBought"`
	Spell1Cast                      *int  `json:"spell1Cast"`
	Spell2Cast                      *int  `json:"spell2Cast"`
	Spell3Cast                      *int  `json:"spell3Cast"`
	Spell4Cast                      *int  `json:"spell4Cast"`
	SummonSpell1Cast                *int  `json:"summonSpell1Cast"`
	SummonSpell2Cast                *int  `json:"summonSpell2Cast"`
	SuperMonsterKilled              *int  `json:"superMonsterKilled"`
	Team                            *int  `json:"team"`
	TeamObjective                   *int  `json:"teamObjective"`
	TimePlayed                      *int  `json:"timePlayed"`
	TotalDamageDealt                *int  `json:"totalDamageDealt"`
	TotalDamageDealtToChampions     *int  `json:"totalDamageDealtToChampions"`
	TotalDamageTaken                *int  `json:"totalDamageTaken"`
	TotalHeal                       *int  `json:"totalHeal"`
	TotalPlayerScore                *int  `json:"totalPlayerScore"`
	TotalScoreRank                  *int  `json:"totalScoreRank"`
	TotalTimeCrowdControlDealt      *int  `json:"totalTimeCrowdControlDealt"`
	TotalUnitsHealed                *int  `json:"totalUnitsHealed"`
	TripleKills                     *int  `json:"tripleKills"`
	TrueDamageDealtPlayer           *int  `json:"trueDamageDealtPlayer"`
	TrueDamageDealtToChampions      *int  `json:"trueDamageDealtToChampions"`
	TrueDamageTaken                 *int  `json:"trueDamageTaken"`
	TurretsKilled                   *int  `json:"turretsKilled"`
	UnrealKills                     *int  `json:"unrealKills"`
	VictoryPointTotal               *int  `json:"victoryPointTotal"`
	VisionWardsBought               *int  `json:"visionWardsBought"`
	WardKilled                      *int  `json:"wardKilled"`
	WardPlaced                      *int  `json:"wardPlaced"`
	Win                             *bool `json:"win"`
}

type leagueDTO struct {
	ID     int64  `json:"id"`
	Region string `json:"region"`
	Queue  string `json:"queue"`
	Name   string `json:"name"`
	Tier   string `json:"tier"`
}

type miniSeriesDTO struct {
	Losses   int    `json:"losses"`
	Progress string `json:"progress"`
	Target   int    `json:"target"`
	Wins     int    `json:"wins"`
}

type leagueEntryDTO struct {
	LeagueID         int64          `json:"leagueId"`
	Division         string         `json:"division"`
	IsFreshBlood     bool           `json:"isFreshBlood"`
	IsHotStreak      bool           `json:"isHotStreak"`
	IsInactive       bool           `json:"isInactive"`
	IsVeteran        bool           `json:"isVeteran"`
	LeaguePoints     int            `json:"leaguePoints"`
	PlayerOrTeamID   string         `json:"playerOrTeamId"`
	PlayerOrTeamName string         `json:"playerOrTeamName"`
	Wins             int            `json:"wins"`
	MiniSeries       *miniSeriesDTO `json:"miniSeries,omitempty"`
}

type leagueDetailDTO struct {
	leagueDTO
	Entries []leagueEntryDTO `json:"entries"`
}

type teamDTO struct {
	ID                            int64  `json:"id"`
	Region                        string `json:"region"`
	FullID                        string `json:"fullId"`
	Name                          string `json:"name"`
	Tag                           string `json:"tag"`
	Status                        string `json:"status"`
	CreateDate                    int64  `json:"createDate"`
	LastGameDate                  *int64 `json:"lastGameDate"`
	LastJoinedRankedTeamQueueDate int64  `json:"lastJoinedRankedTeamQueueDate"`
	ModifyDate                    int64  `json:"modifyDate"`
	LastJoinDate                  int64  `json:"lastJoinDate"`
	SecondLastJoinDate            int64  `json:"secondLastJoinDate"`
	ThirdLastJoinDate             int64  `json:"thirdLastJoinDate"`
}

type teamMemberDTO struct {
	PlayerID   int64  `json:"playerId"`
	InviteDate int64  `json:"inviteDate"`
	JoinDate   int64  `json:"joinDate"`
	Status     string `json:"status"`
}

type teamStatDetailDTO struct {
	TeamStatType       string `json:"teamStatType"`
	AverageGamesPlayed int    `json:"averageGamesPlayed"`
	Wins               int    `json:"wins"`
	Losses             int    `json:"losses"`
}

type teamMatchDTO struct {
	GameID            int64  `json:"gameId"`
	Date              int64  `json:"date"`
	GameMode          string `json:"gameMode"`
	MapID             int    `json:"mapId"`
	Invalid           bool   `json:"invalid"`
	Kills             int    `json:"kills"`
	Deaths            int    `json:"deaths"`
	Assists           int    `json:"assists"`
	OpposingTeamKills int    `json:"opposingTeamKills"`
	OpposingTeamName  string `json:"opposingTeamName"`
	Win               bool   `json:"win"`
}

type teamDetailDTO struct {
	teamDTO
	OwnerID      int64               `json:"ownerId"`
	Members      []teamMemberDTO     `json:"members"`
	StatDetails  []teamStatDetailDTO `json:"teamStatDetails"`
	MatchHistory []teamMatchDTO      `json:"matchHistory"`
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func summonerToDTO(v summoner.Summoner) summonerDTO {
	return summonerDTO{
		SummonerID:    v.SummonerID,
		Name:          v.Name,
		Region:        v.Region,
		ProfileIconID: v.ProfileIconID,
		SummonerLevel: v.SummonerLevel,
		RevisionDate:  v.RevisionDate,
		LastSyncedAt:  formatTime(v.LastSyncedAt),
	}
}

func resolveToDTO(v usecase.ResolveResult, taskID string) resolveDTO {
	return resolveDTO{
		Summoner: summonerToDTO(v.Summoner),
		Outcome:  string(v.Outcome),
		TaskID:   taskID,
	}
}

func taskToDTO(v task.Task) taskDTO {
	out := taskDTO{
		ID:           v.ID,
		Name:         v.Name,
		State:        string(v.State),
		Payload:      v.Payload,
		Result:       v.Result,
		ErrorMessage: v.ErrorMessage,
		Attempts:     v.Attempts,
		CreatedAt:    formatTime(v.CreatedAt),
		UpdatedAt:    formatTime(v.UpdatedAt),
	}
	if v.FinishedAt != nil {
		out.FinishedAt = formatTime(*v.FinishedAt)
	}
	return out
}

func championToDTO(v catalog.Champion) championDTO {
	return championDTO{ChampionID: v.ChampionID, Key: v.Key, Name: v.Name, Title: v.Title}
}

func itemToDTO(v catalog.Item) itemDTO {
	return itemDTO{
		ItemID:      v.ItemID,
		Name:        v.Name,
		Description: v.Description,
		PlainText:   v.PlainText,
		Group:       v.Group,
	}
}

func summonerSpellToDTO(v catalog.SummonerSpell) summonerSpellDTO {
	return summonerSpellDTO{
		SpellID:       v.SpellID,
		Key:           v.Key,
		Name:          v.Name,
		Description:   v.Description,
		SummonerLevel: v.SummonerLevel,
	}
}

func gameDetailToDTO(v game.Detail) gameDTO {
	players := make([]gamePlayerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, gamePlayerDTO{
			SummonerID: p.SummonerID,
			ChampionID: p.ChampionID,
			TeamID:     p.TeamID,
		})
	}

	g := v.Game
	return gameDTO{
		GameID:      g.GameID,
		SummonerID:  g.SummonerID,
		ChampionID:  g.ChampionID,
		ChampionKey: g.ChampionKey,
		CreateDate:  g.CreateDate,
		GameMode:    g.GameMode,
		GameType:    g.GameType,
		SubType:     g.SubType,
		Invalid:     g.Invalid,
		IPEarned:    g.IPEarned,
		Level:       g.Level,
		MapID:       g.MapID,
		Spell1ID:    g.Spell1ID,
		Spell2ID:    g.Spell2ID,
		TeamID:      g.TeamID,
		Region:      g.Region,
		LastUpdate:  formatTime(g.LastUpdate),
		Stats:       rawStatDTO(v.Stats),
		FellowPlays: players,
	}
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{ID: v.ID, Region: v.Region, Queue: v.Queue, Name: v.Name, Tier: v.Tier}
}

func leagueEntryToDTO(v league.Entry) leagueEntryDTO {
	out := leagueEntryDTO{
		LeagueID:         v.LeagueID,
		Division:         v.Division,
		IsFreshBlood:     v.IsFreshBlood,
		IsHotStreak:      v.IsHotStreak,
		IsInactive:       v.IsInactive,
		IsVeteran:        v.IsVeteran,
		LeaguePoints:     v.LeaguePoints,
		PlayerOrTeamID:   v.PlayerOrTeamID,
		PlayerOrTeamName: v.PlayerOrTeamName,
		Wins:             v.Wins,
	}
	if v.MiniSeries != nil {
		series := miniSeriesDTO(*v.MiniSeries)
		out.MiniSeries = &series
	}
	return out
}

func leagueSnapshotToDTO(v league.Snapshot) leagueDetailDTO {
	entries := make([]leagueEntryDTO, 0, len(v.Entries))
	for _, e := range v.Entries {
		entries = append(entries, leagueEntryToDTO(e))
	}
	return leagueDetailDTO{leagueDTO: leagueToDTO(v.League), Entries: entries}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:                            v.ID,
		Region:                        v.Region,
		FullID:                        v.FullID,
		Name:                          v.Name,
		Tag:                           v.Tag,
		Status:                        v.Status,
		CreateDate:                    v.CreateDate,
		LastGameDate:                  v.LastGameDate,
		LastJoinedRankedTeamQueueDate: v.LastJoinedRankedTeamQueueDate,
		ModifyDate:                    v.ModifyDate,
		LastJoinDate:                  v.LastJoinDate,
		SecondLastJoinDate:            v.SecondLastJoinDate,
		ThirdLastJoinDate:             v.ThirdLastJoinDate,
	}
}

func teamSnapshotToDTO(v team.Snapshot) teamDetailDTO {
	members := make([]teamMemberDTO, 0, len(v.Members))
	for _, m := range v.Members {
		members = append(members, teamMemberDTO{
			PlayerID:   m.PlayerID,
			InviteDate: m.InviteDate,
			JoinDate:   m.JoinDate,
			Status:     m.Status,
		})
	}

	stats := make([]teamStatDetailDTO, 0, len(v.StatDetails))
	for _, s := range v.StatDetails {
		stats = append(stats, teamStatDetailDTO{
			TeamStatType:       s.TeamStatType,
			AverageGamesPlayed: s.AverageGamesPlayed,
			Wins:               s.Wins,
			Losses:             s.Losses,
		})
	}

	history := make([]teamMatchDTO, 0, len(v.MatchHistory))
	for _, m := range v.MatchHistory {
		history = append(history, teamMatchDTO{
			GameID:            m.GameID,
			Date:              m.Date,
			GameMode:          m.GameMode,
			MapID:             m.MapID,
			Invalid:           m.Invalid,
			Kills:             m.Kills,
			Deaths:            m.Deaths,
			Assists:           m.Assists,
			OpposingTeamKills: m.OpposingTeamKills,
			OpposingTeamName:  m.OpposingTeamName,
			Win:               m.Win,
		})
	}

	return teamDetailDTO{
		teamDTO:      teamToDTO(v.Team),
		OwnerID:      v.Roster.OwnerID,
		Members:      members,
		StatDetails:  stats,
		MatchHistory: history,
	}
}
