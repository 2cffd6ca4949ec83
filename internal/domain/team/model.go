package team

// Team is a ranked team, unique per (region, full_id).
type Team struct {
	ID                            int64
	Region                        string
	FullID                        string
	Name                          string
	Tag                           string
	Status                        string
	CreateDate                    int64
	LastGameDate                  *int64
	LastJoinedRankedTeamQueueDate int64
	ModifyDate                    int64
	LastJoinDate                  int64
	SecondLastJoinDate            int64
	ThirdLastJoinDate             int64
}

type Roster struct {
	ID      int64
	TeamID  int64
	OwnerID int64
}

type MemberInfo struct {
	ID         int64
	RosterID   int64
	InviteDate int64
	JoinDate   int64
	PlayerID   int64
	Status     string
}

type StatDetail struct {
	ID                 int64
	TeamID             int64
	TeamStatType       string
	AverageGamesPlayed int
	Wins               int
	Losses             int
}

type MatchHistorySummary struct {
	ID                int64
	TeamID            int64
	Assists           int
	Date              int64
	Deaths            int
	GameID            int64
	GameMode          string
	Invalid           bool
	Kills             int
	MapID             int
	OpposingTeamKills int
	OpposingTeamName  string
	Win               bool
}

// Snapshot is a complete team as returned upstream. Replace persists it
// whole; there is no partial update.
type Snapshot struct {
	Team         Team
	Roster       Roster
	Members      []MemberInfo
	StatDetails  []StatDetail
	MatchHistory []MatchHistorySummary
}

// Filter narrows List. MemberID, when set, keeps teams whose roster lists that player.
type Filter struct {
	Region   string
	MemberID int64
	Page     int
	PageSize int
}
