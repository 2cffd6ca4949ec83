package postgres

import (
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/game"
	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type gameTableModel struct {
	ID          int64     `db:"id,readonly"`
	SummonerPK  int64     `db:"summoner_pk"`
	SummonerID  int64     `db:"summoner_id"`
	ChampionID  int       `db:"champion_id"`
	ChampionKey string    `db:"champion_key"`
	GameID      int64     `db:"game_id"`
	CreateDate  int64     `db:"create_date"`
	GameMode    string    `db:"game_mode"`
	GameType    string    `db:"game_type"`
	SubType     string    `db:"sub_type"`
	Invalid     bool      `db:"invalid"`
	IPEarned    int       `db:"ip_earned"`
	Level       int       `db:"level"`
	MapID       int       `db:"map_id"`
	Spell1ID    int       `db:"spell1_id"`
	Spell2ID    int       `db:"spell2_id"`
	TeamID      int       `db:"team_id"`
	Region      string    `db:"region"`
	RawStatID   int64     `db:"raw_stat_id"`
	LastUpdate  time.Time `db:"last_update"`
}

type gamePlayerTableModel struct {
	ID         int64 `db:"id,readonly"`
	GamePK     int64 `db:"game_pk"`
	SummonerPK int64 `db:"summoner_pk"`
	SummonerID int64 `db:"summoner_id"`
	ChampionID int   `db:"champion_id"`
	TeamID     int   `db:"team_id"`
}

// rawStatTableModel mirrors raw_stats column for column. Pointer fields map
// NULL both ways.
type rawStatTableModel struct {
	ID                              int64 `db:"id,readonly"`
	Assists                         *int  `db:"assists"`
	BarracksKilled                  *int  `db:"barracks_killed"`
	ChampionsKilled                 *int  `db:"champions_killed"`
	CombatPlayerScore               *int  `db:"combat_player_score"`
	ConsumablesPurchased            *int  `db:"consumables_purchased"`
	DamageDealtPlayer               *int  `db:"damage_dealt_player"`
	DoubleKills                     *int  `db:"double_kills"`
	FirstBlood                      *int  `db:"first_blood"`
	Gold                            *int  `db:"gold"`
	GoldEarned                      *int  `db:"gold_earned"`
	GoldSpent                       *int  `db:"gold_spent"`
	Item0                           *int  `db:"item0"`
	Item1                           *int  `db:"item1"`
	Item2                           *int  `db:"item2"`
	Item3                           *int  `db:"item3"`
	Item4                           *int  `db:"item4"`
	Item5                           *int  `db:"item5"`
	Item6                           *int  `db:"item6"`
	ItemsPurchased                  *int  `db:"items_purchased"`
	KillingSprees                   *int  `db:"killing_sprees"`
	LargestCriticalStrike           *int  `db:"largest_critical_strike"`
	LargestKillingSpree             *int  `db:"largest_killing_spree"`
	LargestMultiKill                *int  `db:"largest_multi_kill"`
	LegendaryItemsCreated           *int  `db:"legendary_items_created"`
	Level                           *int  `db:"level"`
	MagicDamageDealtPlayer          *int  `db:"magic_damage_dealt_player"`
	MagicDamageDealtToChampions     *int  `db:"magic_damage_dealt_to_champions"`
	MagicDamageTaken                *int  `db:"magic_damage_taken"`
	MinionsDenied                   *int  `db:"minions_denied"`
	MinionsKilled                   *int  `db:"minions_killed"`
	NeutralMinionsKilled            *int  `db:"neutral_minions_killed"`
	NeutralMinionsKilledEnemyJungle *int  `db:"neutral_minions_killed_enemy_jungle"`
	NeutralMinionsKilledYourJungle  *int  `db:"neutral_minions_killed_your_jungle"`
	NexusKilled                     *bool `db:"nexus_killed"`
	NodeCapture                     *int  `db:"node_capture"`
	NodeCaptureAssist               *int  `db:"node_capture_assist"`
	NodeNeutralize                  *int  `db:"node_neutralize"`
	NodeNeutralizeAssist            *int  `db:"node_neutralize_assist"`
	NumDeaths                       *int  `db:"num_deaths"`
	NumItemsBought                  *int  `db:"num_items_bought"`
	ObjectivePlayerScore            *int  `db:"objective_player_score"`
	PentaKills                      *int  `db:"penta_kills"`
	PhysicalDamageDealtPlayer       *int  `db:"physical_damage_dealt_player"`
	PhysicalDamageDealtToChampions  *int  `db:"physical_damage_dealt_to_champions"`
	PhysicalDamageTaken             *int  `db:"physical_damage_taken"`
	QuadraKills                     *int  `db:"quadra_kills"`
	SightWardsBought                *int  `db:"sight_wards_bought"`
	Spell1Cast                      *int  `db:"spell_1_cast"`
	Spell2Cast                      *int  `db:"spell_2_cast"`
	Spell3Cast                      *int  `db:"spell_3_cast"`
	Spell4Cast                      *int  `db:"spell_4_cast"`
	SummonSpell1Cast                *int  `db:"summon_spell_1_cast"`
	SummonSpell2Cast                *int  `db:"summon_spell_2_cast"`
	SuperMonsterKilled              *int  `db:"super_monster_killed"`
	Team                            *int  `db:"team"`
	TeamObjective                   *int  `db:"team_objective"`
	TimePlayed                      *int  `db:"time_played"`
	TotalDamageDealt                *int  `db:"total_damage_dealt"`
	TotalDamageDealtToChampions     *int  `db:"total_damage_dealt_to_champions"`
	TotalDamageTaken                *int  `db:"total_damage_taken"`
	TotalHeal                       *int  `db:"total_heal"`
	TotalPlayerScore                *int  `db:"total_player_score"`
	TotalScoreRank                  *int  `db:"total_score_rank"`
	TotalTimeCrowdControlDealt      *int  `db:"total_time_crowd_control_dealt"`
	TotalUnitsHealed                *int  `db:"total_units_healed"`
	TripleKills                     *int  `db:"triple_kills"`
	TrueDamageDealtPlayer           *int  `db:"true_damage_dealt_player"`
	TrueDamageDealtToChampions      *int  `db:"true_damage_dealt_to_champions"`
	TrueDamageTaken                 *int  `db:"true_damage_taken"`
	TurretsKilled                   *int  `db:"turrets_killed"`
	UnrealKills                     *int  `db:"unreal_kills"`
	VictoryPointTotal               *int  `db:"victory_point_total"`
	VisionWardsBought               *int  `db:"vision_wards_bought"`
	WardKilled                      *int  `db:"ward_killed"`
	WardPlaced                      *int  `db:"ward_placed"`
	Win                             *bool `db:"win"`
}

var (
	gameColumns       = qb.Columns(gameTableModel{})
	gamePlayerColumns = qb.Columns(gamePlayerTableModel{})
	rawStatColumns    = qb.Columns(rawStatTableModel{})
)

func newGameTableModel(item game.Game) gameTableModel {
	return gameTableModel{
		ID:          item.ID,
		SummonerPK:  item.SummonerPK,
		SummonerID:  item.SummonerID,
		ChampionID:  item.ChampionID,
		ChampionKey: item.ChampionKey,
		GameID:      item.GameID,
		CreateDate:  item.CreateDate,
		GameMode:    item.GameMode,
		GameType:    item.GameType,
		SubType:     item.SubType,
		Invalid:     item.Invalid,
		IPEarned:    item.IPEarned,
		Level:       item.Level,
		MapID:       item.MapID,
		Spell1ID:    item.Spell1ID,
		Spell2ID:    item.Spell2ID,
		TeamID:      item.TeamID,
		Region:      item.Region,
		RawStatID:   item.RawStatID,
		LastUpdate:  item.LastUpdate.UTC(),
	}
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:          m.ID,
		SummonerPK:  m.SummonerPK,
		SummonerID:  m.SummonerID,
		ChampionID:  m.ChampionID,
		ChampionKey: m.ChampionKey,
		GameID:      m.GameID,
		CreateDate:  m.CreateDate,
		GameMode:    m.GameMode,
		GameType:    m.GameType,
		SubType:     m.SubType,
		Invalid:     m.Invalid,
		IPEarned:    m.IPEarned,
		Level:       m.Level,
		MapID:       m.MapID,
		Spell1ID:    m.Spell1ID,
		Spell2ID:    m.Spell2ID,
		TeamID:      m.TeamID,
		Region:      m.Region,
		RawStatID:   m.RawStatID,
		LastUpdate:  m.LastUpdate,
	}
}

func newGamePlayerTableModel(item game.Player) gamePlayerTableModel {
	return gamePlayerTableModel{
		GamePK:     item.GamePK,
		SummonerPK: item.SummonerPK,
		SummonerID: item.SummonerID,
		ChampionID: item.ChampionID,
		TeamID:     item.TeamID,
	}
}

func (m gamePlayerTableModel) toDomain() game.Player {
	return game.Player{
		ID:         m.ID,
		GamePK:     m.GamePK,
		SummonerPK: m.SummonerPK,
		SummonerID: m.SummonerID,
		ChampionID: m.ChampionID,
		TeamID:     m.TeamID,
	}
}

func newRawStatTableModel(item game.RawStat) rawStatTableModel {
	return rawStatTableModel{
		ID:                              item.ID,
		Assists:                         item.Assists,
		BarracksKilled:                  item.BarracksKilled,
		ChampionsKilled:                 item.ChampionsKilled,
		CombatPlayerScore:               item.CombatPlayerScore,
		ConsumablesPurchased:            item.ConsumablesPurchased,
		DamageDealtPlayer:               item.DamageDealtPlayer,
		DoubleKills:                     item.DoubleKills,
		FirstBlood:                      item.FirstBlood,
		Gold:                            item.Gold,
		GoldEarned:                      item.GoldEarned,
		GoldSpent:                       item.GoldSpent,
		Item0:                           item.Item0,
		Item1:                           item.Item1,
		Item2:                           item.Item2,
		Item3:                           item.Item3,
		Item4:                           item.Item4,
		Item5:                           item.Item5,
		Item6:                           item.Item6,
		ItemsPurchased:                  item.ItemsPurchased,
		KillingSprees:                   item.KillingSprees,
		LargestCriticalStrike:           item.LargestCriticalStrike,
		LargestKillingSpree:             item.LargestKillingSpree,
		LargestMultiKill:                item.LargestMultiKill,
		LegendaryItemsCreated:           item.LegendaryItemsCreated,
		Level:                           item.Level,
		MagicDamageDealtPlayer:          item.MagicDamageDealtPlayer,
		MagicDamageDealtToChampions:     item.MagicDamageDealtToChampions,
		MagicDamageTaken:                item.MagicDamageTaken,
		MinionsDenied:                   item.MinionsDenied,
		MinionsKilled:                   item.MinionsKilled,
		NeutralMinionsKilled:            item.NeutralMinionsKilled,
		NeutralMinionsKilledEnemyJungle: item.NeutralMinionsKilledEnemyJungle,
		NeutralMinionsKilledYourJungle:  item.NeutralMinionsKilledYourJungle,
		NexusKilled:                     item.NexusKilled,
		NodeCapture:                     item.NodeCapture,
		NodeCaptureAssist:               item.NodeCaptureAssist,
		NodeNeutralize:                  item.NodeNeutralize,
		NodeNeutralizeAssist:            item.NodeNeutralizeAssist,
		NumDeaths:                       item.NumDeaths,
		NumItemsBought:                  item.NumItemsBought,
		ObjectivePlayerScore:            item.ObjectivePlayerScore,
		PentaKills:                      item.PentaKills,
		PhysicalDamageDealtPlayer:       item.PhysicalDamageDealtPlayer,
		PhysicalDamageDealtToChampions:  item.PhysicalDamageDealtToChampions,
		PhysicalDamageTaken:             item.PhysicalDamageTaken,
		QuadraKills:                     item.QuadraKills,
		SightWardsBought:                item.SightWardsBought,
		Spell1Cast:                      item.Spell1Cast,
		Spell2Cast:                      item.Spell2Cast,
		Spell3Cast:                      item.Spell3Cast,
		Spell4Cast:                      item.Spell4Cast,
		SummonSpell1Cast:                item.SummonSpell1Cast,
		SummonSpell2Cast:                item.SummonSpell2Cast,
		SuperMonsterKilled:              item.SuperMonsterKilled,
		Team:                            item.Team,
		TeamObjective:                   item.TeamObjective,
		TimePlayed:                      item.TimePlayed,
		TotalDamageDealt:                item.TotalDamageDealt,
		TotalDamageDealtToChampions:     item.TotalDamageDealtToChampions,
		TotalDamageTaken:                item.TotalDamageTaken,
		TotalHeal:                       item.TotalHeal,
		TotalPlayerScore:                item.TotalPlayerScore,
		TotalScoreRank:                  item.TotalScoreRank,
		TotalTimeCrowdControlDealt:      item.TotalTimeCrowdControlDealt,
		TotalUnitsHealed:                item.TotalUnitsHealed,
		TripleKills:                     item.TripleKills,
		TrueDamageDealtPlayer:           item.TrueDamageDealtPlayer,
		TrueDamageDealtToChampions:      item.TrueDamageDealtToChampions,
		TrueDamageTaken:                 item.TrueDamageTaken,
		TurretsKilled:                   item.TurretsKilled,
		UnrealKills:                     item.UnrealKills,
		VictoryPointTotal:               item.VictoryPointTotal,
		VisionWardsBought:               item.VisionWardsBought,
		WardKilled:                      item.WardKilled,
		WardPlaced:                      item.WardPlaced,
		Win:                             item.Win,
	}
}

func (m rawStatTableModel) toDomain() game.RawStat {
	return game.RawStat{
		ID:                              m.ID,
		Assists:                         m.Assists,
		BarracksKilled:                  m.BarracksKilled,
		ChampionsKilled:                 m.ChampionsKilled,
		CombatPlayerScore:               m.CombatPlayerScore,
		ConsumablesPurchased:            m.ConsumablesPurchased,
		DamageDealtPlayer:               m.DamageDealtPlayer,
		DoubleKills:                     m.DoubleKills,
		FirstBlood:                      m.FirstBlood,
		Gold:                            m.Gold,
		GoldEarned:                      m.GoldEarned,
		GoldSpent:                       m.GoldSpent,
		Item0:                           m.Item0,
		Item1:                           m.Item1,
		Item2:                           m.Item2,
		Item3:                           m.Item3,
		Item4:                           m.Item4,
		Item5:                           m.Item5,
		Item6:                           m.Item6,
		ItemsPurchased:                  m.ItemsPurchased,
		KillingSprees:                   m.KillingSprees,
		LargestCriticalStrike:           m.LargestCriticalStrike,
		LargestKillingSpree:             m.LargestKillingSpree,
		LargestMultiKill:                m.LargestMultiKill,
		LegendaryItemsCreated:           m.LegendaryItemsCreated,
		Level:                           m.Level,
		MagicDamageDealtPlayer:          m.MagicDamageDealtPlayer,
		MagicDamageDealtToChampions:     m.MagicDamageDealtToChampions,
		MagicDamageTaken:                m.MagicDamageTaken,
		MinionsDenied:                   m.MinionsDenied,
		MinionsKilled:                   m.MinionsKilled,
		NeutralMinionsKilled:            m.NeutralMinionsKilled,
		NeutralMinionsKilledEnemyJungle: m.NeutralMinionsKilledEnemyJungle,
		NeutralMinionsKilledYourJungle:  m.NeutralMinionsKilledYourJungle,
		NexusKilled:                     m.NexusKilled,
		NodeCapture:                     m.NodeCapture,
		NodeCaptureAssist:               m.NodeCaptureAssist,
		NodeNeutralize:                  m.NodeNeutralize,
		NodeNeutralizeAssist:            m.NodeNeutralizeAssist,
		NumDeaths:                       m.NumDeaths,
		NumItemsBought:                  m.NumItemsBought,
		ObjectivePlayerScore:            m.ObjectivePlayerScore,
		PentaKills:                      m.PentaKills,
		PhysicalDamageDealtPlayer:       m.PhysicalDamageDealtPlayer,
		PhysicalDamageDealtToChampions:  m.PhysicalDamageDealtToChampions,
		PhysicalDamageTaken:             m.PhysicalDamageTaken,
		QuadraKills:                     m.QuadraKills,
		SightWardsBought:                m.SightWardsBought,
		Spell1Cast:                      m.Spell1Cast,
		Spell2Cast:                      m.Spell2Cast,
		Spell3Cast:                      m.Spell3Cast,
		Spell4Cast:                      m.Spell4Cast,
		SummonSpell1Cast:                m.SummonSpell1Cast,
		SummonSpell2Cast:                m.SummonSpell2Cast,
		SuperMonsterKilled:              m.SuperMonsterKilled,
		Team:                            m.Team,
		TeamObjective:                   m.TeamObjective,
		TimePlayed:                      m.TimePlayed,
		TotalDamageDealt:                m.TotalDamageDealt,
		TotalDamageDealtToChampions:     m.TotalDamageDealtToChampions,
		TotalDamageTaken:                m.TotalDamageTaken,
		TotalHeal:                       m.TotalHeal,
		TotalPlayerScore:                m.TotalPlayerScore,
		TotalScoreRank:                  m.TotalScoreRank,
		TotalTimeCrowdControlDealt:      m.TotalTimeCrowdControlDealt,
		TotalUnitsHealed:                m.TotalUnitsHealed,
		TripleKills:                     m.TripleKills,
		TrueDamageDealtPlayer:           m.TrueDamageDealtPlayer,
		TrueDamageDealtToChampions:      m.TrueDamageDealtToChampions,
		TrueDamageTaken:                 m.TrueDamageTaken,
		TurretsKilled:                   m.TurretsKilled,
		UnrealKills:                     m.UnrealKills,
		VictoryPointTotal:               m.VictoryPointTotal,
		VisionWardsBought:               m.VisionWardsBought,
		WardKilled:                      m.WardKilled,
		WardPlaced:                      m.WardPlaced,
		Win:                             m.Win,
	}
}
