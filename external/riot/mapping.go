package riot

import (
	"strconv"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/game"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
	"github.com/riskibarqy/lol-stats-sync/internal/usecase"
)

func mapSummoner(dto summonerDTO) usecase.ExternalSummoner {
	return usecase.ExternalSummoner{
		SummonerID:    dto.ID,
		Name:          dto.Name,
		ProfileIconID: dto.ProfileIconID,
		SummonerLevel: dto.SummonerLevel,
		RevisionDate:  dto.RevisionDate,
	}
}

func mapGame(dto gameDTO) usecase.ExternalGame {
	fellows := make([]usecase.ExternalFellowPlayer, 0, len(dto.FellowPlayers))
	for _, p := range dto.FellowPlayers {
		fellows = append(fellows, usecase.ExternalFellowPlayer{
			SummonerID: p.SummonerID,
			ChampionID: p.ChampionID,
			TeamID:     p.TeamID,
		})
	}

	return usecase.ExternalGame{
		GameID:        dto.GameID,
		ChampionID:    dto.ChampionID,
		CreateDate:    dto.CreateDate,
		GameMode:      dto.GameMode,
		GameType:      dto.GameType,
		SubType:       dto.SubType,
		Invalid:       dto.Invalid,
		IPEarned:      dto.IPEarned,
		Level:         dto.Level,
		MapID:         dto.MapID,
		Spell1ID:      dto.Spell1,
		Spell2ID:      dto.Spell2,
		TeamID:        dto.TeamID,
		FellowPlayers: fellows,
		Stats:         mapRawStats(dto.Stats),
	}
}

// mapRawStats copies every counter one to one. Absent counters stay nil.
func mapRawStats(dto rawStatsDTO) game.RawStat {
	return game.RawStat{
		Assists:                         dto.Assists,
		BarracksKilled:                  dto.BarracksKilled,
		ChampionsKilled:                 dto.ChampionsKilled,
		CombatPlayerScore:               dto.CombatPlayerScore,
		ConsumablesPurchased:            dto.ConsumablesPurchased,
		DamageDealtPlayer:               dto.DamageDealtPlayer,
		DoubleKills:                     dto.DoubleKills,
		FirstBlood:                      dto.FirstBlood,
		Gold:                            dto.Gold,
		GoldEarned:                      dto.GoldEarned,
		GoldSpent:                       dto.GoldSpent,
		Item0:                           dto.Item0,
		Item1:                           dto.Item1,
		Item2:                           dto.Item2,
		Item3:                           dto.Item3,
		Item4:                           dto.Item4,
		Item5:                           dto.Item5,
		Item6:                           dto.Item6,
		ItemsPurchased:                  dto.ItemsPurchased,
		KillingSprees:                   dto.KillingSprees,
		LargestCriticalStrike:           dto.LargestCriticalStrike,
		LargestKillingSpree:             dto.LargestKillingSpree,
		LargestMultiKill:                dto.LargestMultiKill,
		LegendaryItemsCreated:           dto.LegendaryItemsCreated,
		Level:                           dto.Level,
		MagicDamageDealtPlayer:          dto.MagicDamageDealtPlayer,
		MagicDamageDealtToChampions:     dto.MagicDamageDealtToChampions,
		MagicDamageTaken:                dto.MagicDamageTaken,
		MinionsDenied:                   dto.MinionsDenied,
		MinionsKilled:                   dto.MinionsKilled,
		NeutralMinionsKilled:            dto.NeutralMinionsKilled,
		NeutralMinionsKilledEnemyJungle: dto.NeutralMinionsKilledEnemyJungle,
		NeutralMinionsKilledYourJungle:  dto.NeutralMinionsKilledYourJungle,
		NexusKilled:                     dto.NexusKilled,
		NodeCapture:                     dto.NodeCapture,
		NodeCaptureAssist:               dto.NodeCaptureAssist,
		NodeNeutralize:                  dto.NodeNeutralize,
		NodeNeutralizeAssist:            dto.NodeNeutralizeAssist,
		NumDeaths:                       dto.NumDeaths,
		NumItemsBought:                  dto.NumItemsBought,
		ObjectivePlayerScore:            dto.ObjectivePlayerScore,
		PentaKills:                      dto.PentaKills,
		PhysicalDamageDealtPlayer:       dto.PhysicalDamageDealtPlayer,
		PhysicalDamageDealtToChampions:  dto.PhysicalDamageDealtToChampions,
		PhysicalDamageTaken:             dto.PhysicalDamageTaken,
		QuadraKills:                     dto.QuadraKills,
		SightWardsBought:                dto.SightWardsBought,
		Spell1Cast:                      dto.Spell1Cast,
		Spell2Cast:                      dto.Spell2Cast,
		Spell3Cast:                      dto.Spell3Cast,
		Spell4Cast:                      dto.Spell4Cast,
		SummonSpell1Cast:                dto.SummonSpell1Cast,
		SummonSpell2Cast:                dto.SummonSpell2Cast,
		SuperMonsterKilled:              dto.SuperMonsterKilled,
		Team:                            dto.Team,
		TeamObjective:                   dto.TeamObjective,
		TimePlayed:                      dto.TimePlayed,
		TotalDamageDealt:                dto.TotalDamageDealt,
		TotalDamageDealtToChampions:     dto.TotalDamageDealtToChampions,
		TotalDamageTaken:                dto.TotalDamageTaken,
		TotalHeal:                       dto.TotalHeal,
		TotalPlayerScore:                dto.TotalPlayerScore,
		TotalScoreRank:                  dto.TotalScoreRank,
		TotalTimeCrowdControlDealt:      dto.TotalTimeCrowdControlDealt,
		TotalUnitsHealed:                dto.TotalUnitsHealed,
		TripleKills:                     dto.TripleKills,
		TrueDamageDealtPlayer:           dto.TrueDamageDealtPlayer,
		TrueDamageDealtToChampions:      dto.TrueDamageDealtToChampions,
		TrueDamageTaken:                 dto.TrueDamageTaken,
		TurretsKilled:                   dto.TurretsKilled,
		UnrealKills:                     dto.UnrealKills,
		VictoryPointTotal:               dto.VictoryPointTotal,
		VisionWardsBought:               dto.VisionWardsBought,
		WardKilled:                      dto.WardKilled,
		WardPlaced:                      dto.WardPlaced,
		Win:                             dto.Win,
	}
}

func mapLeague(region string, dto leagueDTO) league.Snapshot {
	entries := make([]league.Entry, 0, len(dto.Entries))
	for _, e := range dto.Entries {
		entry := league.Entry{
			Division:         e.Division,
			IsFreshBlood:     e.IsFreshBlood,
			IsHotStreak:      e.IsHotStreak,
			IsInactive:       e.IsInactive,
			IsVeteran:        e.IsVeteran,
			LeaguePoints:     e.LeaguePoints,
			PlayerOrTeamID:   e.PlayerOrTeamID,
			PlayerOrTeamName: e.PlayerOrTeamName,
			Wins:             e.Wins,
		}
		if e.MiniSeries != nil {
			entry.MiniSeries = &league.MiniSeries{
				Losses:   e.MiniSeries.Losses,
				Progress: e.MiniSeries.Progress,
				Target:   e.MiniSeries.Target,
				Wins:     e.MiniSeries.Wins,
			}
		}
		entries = append(entries, entry)
	}

	return league.Snapshot{
		League: league.League{
			Region: region,
			Queue:  dto.Queue,
			Name:   dto.Name,
			Tier:   dto.Tier,
		},
		Entries: entries,
	}
}

func mapTeam(region string, dto teamDTO) team.Snapshot {
	snap := team.Snapshot{
		Team: team.Team{
			Region:                        region,
			FullID:                        dto.FullID,
			Name:                          dto.Name,
			Tag:                           dto.Tag,
			Status:                        dto.Status,
			CreateDate:                    dto.CreateDate,
			LastGameDate:                  dto.LastGameDate,
			LastJoinedRankedTeamQueueDate: dto.LastJoinedRankedTeamQueueDate,
			ModifyDate:                    dto.ModifyDate,
			LastJoinDate:                  dto.LastJoinDate,
			SecondLastJoinDate:            dto.SecondLastJoinDate,
			ThirdLastJoinDate:             dto.ThirdLastJoinDate,
		},
		Roster:       team.Roster{OwnerID: dto.Roster.OwnerID},
		Members:      make([]team.MemberInfo, 0, len(dto.Roster.MemberList)),
		StatDetails:  make([]team.StatDetail, 0, len(dto.TeamStatDetails)),
		MatchHistory: make([]team.MatchHistorySummary, 0, len(dto.MatchHistory)),
	}

	for _, m := range dto.Roster.MemberList {
		snap.Members = append(snap.Members, team.MemberInfo{
			InviteDate: m.InviteDate,
			JoinDate:   m.JoinDate,
			PlayerID:   m.PlayerID,
			Status:     m.Status,
		})
	}
	for _, s := range dto.TeamStatDetails {
		snap.StatDetails = append(snap.StatDetails, team.StatDetail{
			TeamStatType:       s.TeamStatType,
			AverageGamesPlayed: s.AverageGamesPlayed,
			Wins:               s.Wins,
			Losses:             s.Losses,
		})
	}
	for _, h := range dto.MatchHistory {
		snap.MatchHistory = append(snap.MatchHistory, team.MatchHistorySummary{
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
	return snap
}

func mapChampion(dto championDTO) catalog.Champion {
	return catalog.Champion{
		ChampionID: dto.ID,
		Key:        dto.Key,
		Name:       dto.Name,
		Title:      dto.Title,
	}
}

func mapItem(dto itemDTO) catalog.Item {
	return catalog.Item{
		ItemID:      dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		PlainText:   dto.PlainText,
		Group:       dto.Group,
	}
}

func mapSummonerSpell(dto summonerSpellDTO) catalog.SummonerSpell {
	return catalog.SummonerSpell{
		SpellID:       dto.ID,
		Key:           dto.Key,
		Name:          dto.Name,
		Description:   dto.Description,
		SummonerLevel: dto.SummonerLevel,
	}
}

// summonerIDKey is the map key the legacy endpoints use for numeric ids.
func summonerIDKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
