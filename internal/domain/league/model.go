package league

import "fmt"

// League is one ladder, identified by (region, queue, name, tier).
type League struct {
	ID     int64
	Region string
	Queue  string
	Name   string
	Tier   string
}

// MiniSeries is a promotion series in progress.
type MiniSeries struct {
	Losses   int
	Progress string
	Target   int
	Wins     int
}

// Entry is one participant (summoner or team) of a League.
type Entry struct {
	ID               int64
	LeagueID         int64
	Division         string
	IsFreshBlood     bool
	IsHotStreak      bool
	IsInactive       bool
	IsVeteran        bool
	LeaguePoints     int
	PlayerOrTeamID   string
	PlayerOrTeamName string
	Wins             int
	MiniSeries       *MiniSeries
}

// Snapshot is the full upstream view of one league for a summoner.
type Snapshot struct {
	League  League
	Entries []Entry
}

// Filter narrows List. Zero values mean "no constraint".
type Filter struct {
	Region   string
	Queue    string
	Tier     string
	Page     int
	PageSize int
}

func (l League) Validate() error {
	if l.Region == "" {
		return fmt.Errorf("league region is required")
	}
	if l.Queue == "" {
		return fmt.Errorf("league queue is required")
	}
	if l.Tier == "" {
		return fmt.Errorf("league tier is required")
	}
	return nil
}

// DedupeEntries keeps the first entry per PlayerOrTeamID, preserving order.
func DedupeEntries(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.PlayerOrTeamID]; ok {
			continue
		}
		seen[e.PlayerOrTeamID] = struct{}{}
		out = append(out, e)
	}
	return out
}
