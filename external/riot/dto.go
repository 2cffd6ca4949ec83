package riot

// Legacy (v1.x/v2.x) Riot REST payloads. Only the fields the sync routines
// read are declared.

type summonerDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
	RevisionDate  int64  `json:"revisionDate"`
}

type recentGamesDTO struct {
	SummonerID int64     `json:"summonerId"`
	Games      []gameDTO `json:"games"`
}

type gameDTO struct {
	GameID        int64       `json:"gameId"`
	ChampionID    int         `json:"championId"`
	CreateDate    int64       `json:"createDate"`
	GameMode      string      `json:"gameMode"`
	GameType      string      `json:"gameType"`
	SubType       string      `json:"subType"`
	Invalid       bool        `json:"invalid"`
	IPEarned      int         `json:"ipEarned"`
	Level         int         `json:"level"`
	MapID         int         `json:"mapId"`
	Spell1        int         `json:"spell1"`
	Spell2        int         `json:"spell2"`
	TeamID        int         `json:"teamId"`
	FellowPlayers []playerDTO `json:"fellowPlayers"`
	Stats         rawStatsDTO `json:"stats"`
}

type playerDTO struct {
	SummonerID int64 `json:"summonerId"`
	ChampionID int   `json:"championId"`
	TeamID     int   `json:"teamId"`
}

// rawStatsDTO omits zero counters upstream, hence pointers throughout.
type rawStatsDTO struct {
	Assists                         *int  `json:"assists,omitempty"`
	BarracksKilled                  *int  `json:"barracksKilled,omitempty"`
	ChampionsKilled                 *int  `json:"championsKilled,omitempty"`
	CombatPlayerScore               *int  `json:"combatPlayerScore,omitempty"`
	ConsumablesPurchased            *int  `json:"consumablesPurchased,omitempty"`
	DamageDealtPlayer               *int  `json:"damageDealtPlayer,omitempty"`
	DoubleKills                     *int  `json:"doubleKills,omitempty"`
	FirstBlood                      *int  `json:"firstBlood,omitempty"`
	Gold                            *int  `json:"gold,omitempty"`
	GoldEarned                      *int  `json:"goldEarned,omitempty"`
	GoldSpent                       *int  `json:"goldSpent,omitempty"`
	Item0                           *int  `json:"item0,omitempty"`
	Item1                           *int  `json:"item1,omitempty"`
	Item2                           *int  `json:"item2,omitempty"`
	Item3                           *int  `json:"item3,omitempty"`
	Item4                           *int  `json:"item4,omitempty"`
	Item5                           *int  `json:"item5,omitempty"`
	Item6                           *int  `json:"item6,omitempty"`
	ItemsPurchased                  *int  `json:"itemsPurchased,omitempty"`
	KillingSprees                   *int  `json:"killingSprees,omitempty"`
	LargestCriticalStrike           *int  `json:"largestCriticalStrike,omitempty"`
	LargestKillingSpree             *int  `json:"largestKillingSpree,omitempty"`
	LargestMultiKill                *int  `json:"largestMultiKill,omitempty"`
	LegendaryItemsCreated           *int  `json:"legendaryItemsCreated,omitempty"`
	Level                           *int  `json:"level,omitempty"`
	MagicDamageDealtPlayer          *int  `json:"magicDamageDealtPlayer,omitempty"`
	MagicDamageDealtToChampions     *int  `json:"magicDamageDealtToChampions,omitempty"`
	MagicDamageTaken                *int  `json:"magicDamageTaken,omitempty"`
	MinionsDenied                   *int  `json:"minionsDenied,omitempty"`
	MinionsKilled                   *int  `json:"minionsKilled,omitempty"`
	NeutralMinionsKilled            *int  `json:"neutralMinionsKilled,omitempty"`
	NeutralMinionsKilledEnemyJungle *int  `json:"neutralMinionsKilledEnemyJungle,omitempty"`
	NeutralMinionsKilledYourJungle  *int  `json:"neutralMinionsKilledYourJungle,omitempty"`
	NexusKilled                     *bool `json:"nexusKilled,omitempty"`
	NodeCapture                     *int  `json:"nodeCapture,omitempty"`
	NodeCaptureAssist               *int  `json:"nodeCaptureAssist,omitempty"`
	NodeNeutralize                  *int  `json:"nodeNeutralize,omitempty"`
	NodeNeutralizeAssist            *int  `json:"nodeNeutralizeAssist,omitempty"`
	NumDeaths                       *int  `json:"numDeaths,omitempty"`
	NumItemsBought                  *int  `json:"numItemsBought,omitempty"`
	ObjectivePlayerScore            *int  `json:"objectivePlayerScore,omitempty"`
	PentaKills                      *int  `json:"pentaKills,omitempty"`
	PhysicalDamageDealtPlayer       *int  `json:"physicalDamageDealtPlayer,omitempty"`
	PhysicalDamageDealtToChampions  *int  `json:"physicalDamageDealtToChampions,omitempty"`
	PhysicalDamageTaken             *int  `json:"physicalDamageTaken,omitempty"`
	QuadraKills                     *int  `json:"quadraKills,omitempty"`
	SightWardsBought                *int  `json:"sightWardsBought,omitempty"`
	Spell1Cast                      *int  `json:"spell1Cast,omitempty"`
	Spell2Cast                      *int  `json:"spell2Cast,omitempty"`
	Spell3Cast                      *int  `json:"spell3Cast,omitempty"`
	Spell4Cast                      *int  `json:"spell4Cast,omitempty"`
	SummonSpell1Cast                *int  `json:"summonSpell1Cast,omitempty"`
	SummonSpell2Cast                *int  `json:"summonSpell2Cast,omitempty"`
	SuperMonsterKilled              *int  `json:"superMonsterKilled,omitempty"`
	Team                            *int  `json:"team,omitempty"`
	TeamObjective                   *int  `json:"teamObjective,omitempty"`
	TimePlayed                      *int  `json:"timePlayed,omitempty"`
	TotalDamageDealt                *int  `json:"totalDamageDealt,omitempty"`
	TotalDamageDealtToChampions     *int  `json:"totalDamageDealtToChampions,omitempty"`
	TotalDamageTaken                *int  `json:"totalDamageTaken,omitempty"`
	TotalHeal                       *int  `json:"totalHeal,omitempty"`
	TotalPlayerScore                *int  `json:"totalPlayerScore,omitempty"`
	TotalScoreRank                  *int  `json:"totalScoreRank,omitempty"`
	TotalTimeCrowdControlDealt      *int  `json:"totalTimeCrowdControlDealt,omitempty"`
	TotalUnitsHealed                *int  `json:"totalUnitsHealed,omitempty"`
	TripleKills                     *int  `json:"tripleKills,omitempty"`
	TrueDamageDealtPlayer           *int  `json:"trueDamageDealtPlayer,omitempty"`
	TrueDamageDealtToChampions      *int  `json:"trueDamageDealtToChampions,omitempty"`
	TrueDamageTaken                 *int  `json:"trueDamageTaken,omitempty"`
	TurretsKilled                   *int  `json:"turretsKilled,omitempty"`
	UnrealKills                     *int  `json:"unrealKills,omitempty"`
	VictoryPointTotal               *int  `json:"victoryPointTotal,omitempty"`
	VisionWardsBought               *int  `json:"visionWardsBought,omitempty"`
	WardKilled                      *int  `json:"wardKilled,omitempty"`
	WardPlaced                      *int  `json:"wardPlaced,omitempty"`
	Win                             *bool `json:"win,omitempty"`
}

type leagueDTO struct {
	Queue         string           `json:"queue"`
	Name          string           `json:"name"`
	Tier          string           `json:"tier"`
	ParticipantID string           `json:"participantId"`
	Entries       []leagueEntryDTO `json:"entries"`
}

type leagueEntryDTO struct {
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

type miniSeriesDTO struct {
	Losses   int    `json:"losses"`
	Progress string `json:"progress"`
	Target   int    `json:"target"`
	Wins     int    `json:"wins"`
}

type teamDTO struct {
	FullID                        string                   `json:"fullId"`
	Name                          string                   `json:"name"`
	Tag                           string                   `json:"tag"`
	Status                        string                   `json:"status"`
	CreateDate                    int64                    `json:"createDate"`
	LastGameDate                  *int64                   `json:"lastGameDate,omitempty"`
	LastJoinedRankedTeamQueueDate int64                    `json:"lastJoinedRankedTeamQueueDate"`
	ModifyDate                    int64                    `json:"modifyDate"`
	LastJoinDate                  int64                    `json:"lastJoinDate"`
	SecondLastJoinDate            int64                    `json:"secondLastJoinDate"`
	ThirdLastJoinDate             int64                    `json:"thirdLastJoinDate"`
	Roster                        rosterDTO                `json:"roster"`
	TeamStatDetails               []teamStatDetailDTO      `json:"teamStatDetails"`
	MatchHistory                  []matchHistorySummaryDTO `json:"matchHistory"`
}

type rosterDTO struct {
	OwnerID    int64           `json:"ownerId"`
	MemberList []teamMemberDTO `json:"memberList"`
}

type teamMemberDTO struct {
	InviteDate int64  `json:"inviteDate"`
	JoinDate   int64  `json:"joinDate"`
	PlayerID   int64  `json:"playerId"`
	Status     string `json:"status"`
}

type teamStatDetailDTO struct {
	TeamStatType       string `json:"teamStatType"`
	AverageGamesPlayed int    `json:"averageGamesPlayed"`
	Wins               int    `json:"wins"`
	Losses             int    `json:"losses"`
}

type matchHistorySummaryDTO struct {
	Assists           int    `json:"assists"`
	Date              int64  `json:"date"`
	Deaths            int    `json:"deaths"`
	GameID            int64  `json:"gameId"`
	GameMode          string `json:"gameMode"`
	Invalid           bool   `json:"invalid"`
	Kills             int    `json:"kills"`
	MapID             int    `json:"mapId"`
	OpposingTeamKills int    `json:"opposingTeamKills"`
	OpposingTeamName  string `json:"opposingTeamName"`
	Win               bool   `json:"win"`
}

// staticListDTO is the static-data envelope; data is keyed by champion key,
// item id or spell key depending on the endpoint.
type staticListDTO[T any] struct {
	Type    string       `json:"type"`
	Version string       `json:"version"`
	Data    map[string]T `json:"data"`
}

type championDTO struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

type itemDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PlainText   *string `json:"plaintext,omitempty"`
	Group       *string `json:"group,omitempty"`
}

type summonerSpellDTO struct {
	ID            int    `json:"id"`
	Key           string `json:"key"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SummonerLevel int    `json:"summonerLevel"`
}
