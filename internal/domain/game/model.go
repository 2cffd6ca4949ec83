package game

import "time"

// Game is one recent match as seen by one owning summoner. The same upstream
// game id appears once per owner that has it in their history.
type Game struct {
	ID          int64
	SummonerPK  int64
	SummonerID  int64
	ChampionID  int
	ChampionKey string
	GameID      int64
	CreateDate  int64
	GameMode    string
	GameType    string
	SubType     string
	Invalid     bool
	IPEarned    int
	Level       int
	MapID       int
	Spell1ID    int
	Spell2ID    int
	TeamID      int
	Region      string
	RawStatID   int64
	LastUpdate  time.Time
}

// Player is a fellow participant of a Game.
type Player struct {
	ID         int64
	GamePK     int64
	SummonerPK int64
	SummonerID int64
	ChampionID int
	TeamID     int
}

// RawStat carries the per-game counters for the owning summoner. The
// upstream omits zero-valued counters, so nil means "not reported" and must
// never be coerced to 0.
type RawStat struct {
	ID                              int64
	Assists                         *int
	BarracksKilled                  *int
	ChampionsKilled                 *int
	CombatPlayerScore               *int
	ConsumablesPurchased            *int
	DamageDealtPlayer               *int
	DoubleKills                     *int
	FirstBlood                      *int
	Gold                            *int
	GoldEarned                      *int
	GoldSpent                       *int
	Item0                           *int
	Item1                           *int
	Item2                           *int
	Item3                           *int
	Item4                           *int
	Item5                           *int
	Item6                           *int
	ItemsPurchased                  *int
	KillingSprees                   *int
	LargestCriticalStrike           *int
	LargestKillingSpree             *int
	LargestMultiKill                *int
	LegendaryItemsCreated           *int
	Level                           *int
	MagicDamageDealtPlayer          *int
	MagicDamageDealtToChampions     *int
	MagicDamageTaken                *int
	MinionsDenied                   *int
	MinionsKilled                   *int
	NeutralMinionsKilled            *int
	NeutralMinionsKilledEnemyJungle *int
	NeutralMinionsKilledYourJungle  *int
	NexusKilled                     *bool
	NodeCapture                     *int
	NodeCaptureAssist               *int
	NodeNeutralize                  *int
	NodeNeutralizeAssist            *int
	NumDeaths                       *int
	NumItemsBought                  *int
	ObjectivePlayerScore            *int
	PentaKills                      *int
	PhysicalDamageDealtPlayer       *int
	PhysicalDamageDealtToChampions  *int
	PhysicalDamageTaken             *int
	QuadraKills                     *int
	SightWardsBought                *int
	Spell1Cast                      *int
	Spell2Cast                      *int
	Spell3Cast                      *int
	Spell4Cast                      *int
	SummonSpell1Cast                *int
	SummonSpell2Cast                *int
	SuperMonsterKilled              *int
	Team                            *int
	TeamObjective                   *int
	TimePlayed                      *int
	TotalDamageDealt                *int
	TotalDamageDealtToChampions     *int
	TotalDamageTaken                *int
	TotalHeal                       *int
	TotalPlayerScore                *int
	TotalScoreRank                  *int
	TotalTimeCrowdControlDealt      *int
	TotalUnitsHealed                *int
	TripleKills                     *int
	TrueDamageDealtPlayer           *int
	TrueDamageDealtToChampions      *int
	TrueDamageTaken                 *int
	TurretsKilled                   *int
	UnrealKills                     *int
	VictoryPointTotal               *int
	VisionWardsBought               *int
	WardKilled                      *int
	WardPlaced                      *int
	Win                             *bool
}

// Detail bundles a game with its statistics row and participants.
type Detail struct {
	Game    Game
	Stats   RawStat
	Players []Player
}
