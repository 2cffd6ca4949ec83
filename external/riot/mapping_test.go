package riot

import (
	"reflect"
	"testing"

	sonic "github.com/bytedance/sonic"
)

const fullRawStatsPayload = `{"assists": 1, "barracksKilled": 2, "championsKilled": 3, "combatPlayerScore": 4, "consumablesPurchased": 5, "damageDealtPlayer": 6, "doubleKills": 7, "firstBlood": 8, "gold": 9, "goldEarned": 10, "goldSpent": 11, "item0": 12, "item1": 13, "item2": 14, "item3": 15, "item4": 16, "item5": 17, "item6": 18, "itemsPurchased": 19, "killingSprees": 20, "largestCriticalStrike": 21, "largestKillingSpree": 22, "largestMultiKill": 23, "legendaryItemsCreated": 24, "level": 25, "magicDamageDealtPlayer": 26, "magicDamageDealtToChampions": 27, "magicDamageTaken": 28, "minionsDenied": 29, "minionsKilled": 30, "neutralMinionsKilled": 31, "neutralMinionsKilledEnemyJungle": 32, "neutralMinionsKilledYourJungle": 33, "nexusKilled": true, "nodeCapture": 35, "nodeCaptureAssist": 36, "nodeNeutralize": 37, "nodeNeutralizeAssist": 38, "numDeaths": 39, "numItemsBought": 40, "objectivePlayerScore": 41, "pentaKills": 42, "physicalDamageDealtPlayer": 43, "physicalDamageDealtToChampions": 44, "physicalDamageTaken": 45, "quadraKills": 46, "sightWardsBought": 47, "spell1Cast": 48, "spell2Cast": 49, "spell3Cast": 50, "spell4Cast": 51, "summonSpell1Cast": 52, "summonSpell2Cast": 53, "superMonsterKilled": 54, "team": 55, "teamObjective": 56, "timePlayed": 57, "totalDamageDealt": 58, "totalDamageDealtToChampions": 59, "totalDamageTaken": 60, "totalHeal": 61, "totalPlayerScore": 62, "totalScoreRank": 63, "totalTimeCrowdControlDealt": 64, "totalUnitsHealed": 65, "tripleKills": 66, "trueDamageDealtPlayer": 67, "trueDamageDealtToChampions": 68, "trueDamageTaken": 69, "turretsKilled": 70, "unrealKills": 71, "victoryPointTotal": 72, "visionWardsBought": 73, "wardKilled": 74, "wardPlaced": 75, "win": true}`

func TestMapRawStatsCopiesEveryCounter(t *testing.T) {
	t.Parallel()

	var dto rawStatsDTO
	if err := sonic.UnmarshalString(fullRawStatsPayload, &dto); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	stats := mapRawStats(dto)
	value := reflect.ValueOf(stats)
	typ := value.Type()
	mapped := 0
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Name == "ID" {
			continue
		}
		if value.Field(i).IsNil() {
			t.Fatalf("expected %s to be mapped", field.Name)
		}
		mapped++
	}
	if mapped != 76 {
		t.Fatalf("expected 76 counters, got=%d", mapped)
	}
	if stats.Spell1Cast == nil || *stats.Spell1Cast != 48 {
		t.Fatalf("unexpected spell1Cast mapping: %v", stats.Spell1Cast)
	}
	if stats.Win == nil || !*stats.Win {
		t.Fatalf("expected win=true")
	}
}

func TestMapRawStatsKeepsAbsentCountersNil(t *testing.T) {
	t.Parallel()

	var dto rawStatsDTO
	if err := sonic.UnmarshalString(`{"assists":0,"goldEarned":9120,"nexusKilled":false}`, &dto); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	stats := mapRawStats(dto)
	if stats.Assists == nil || *stats.Assists != 0 {
		t.Fatalf("expected present zero to stay 0, got=%v", stats.Assists)
	}
	if stats.GoldEarned == nil || *stats.GoldEarned != 9120 {
		t.Fatalf("unexpected goldEarned=%v", stats.GoldEarned)
	}
	if stats.NexusKilled == nil || *stats.NexusKilled {
		t.Fatalf("expected nexusKilled=false to be kept")
	}
	if stats.ChampionsKilled != nil || stats.Win != nil || stats.Item0 != nil {
		t.Fatalf("expected absent counters to stay nil")
	}
}

func TestMapItemKeepsMissingOptionalFieldsNil(t *testing.T) {
	t.Parallel()

	item := mapItem(itemDTO{ID: 1001, Name: "Boots of Speed", Description: "Slightly increases Movement Speed"})
	if item.PlainText != nil || item.Group != nil {
		t.Fatalf("expected nil plaintext and group, got=%v %v", item.PlainText, item.Group)
	}
}

func TestMapLeagueCopiesMiniSeries(t *testing.T) {
	t.Parallel()

	snap := mapLeague("euw", leagueDTO{
		Queue: "RANKED_SOLO_5x5",
		Name:  "Taric's Enforcers",
		Tier:  "GOLD",
		Entries: []leagueEntryDTO{
			{PlayerOrTeamID: "1", Division: "I", MiniSeries: &miniSeriesDTO{Losses: 1, Progress: "WLN", Target: 2, Wins: 1}},
			{PlayerOrTeamID: "2", Division: "II"},
		},
	})
	if snap.League.Region != "euw" || snap.League.Tier != "GOLD" {
		t.Fatalf("unexpected league: %+v", snap.League)
	}
	if snap.Entries[0].MiniSeries == nil || snap.Entries[0].MiniSeries.Progress != "WLN" {
		t.Fatalf("expected mini series on first entry")
	}
	if snap.Entries[1].MiniSeries != nil {
		t.Fatalf("expected no mini series on second entry")
	}
}
