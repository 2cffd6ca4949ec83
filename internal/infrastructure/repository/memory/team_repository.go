package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
)

type teamKey struct {
	region, fullID string
}

// TeamRepository keeps each child table separately, keyed like the
// foreign keys in Postgres, and deletes children with their team.
type TeamRepository struct {
	mu     sync.RWMutex
	nextID int64

	teams   map[int64]team.Team
	keys    map[teamKey]int64
	rosters map[int64]team.Roster                // by team id
	members map[int64][]team.MemberInfo          // by roster id
	stats   map[int64][]team.StatDetail          // by team id
	history map[int64][]team.MatchHistorySummary // by team id
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{
		teams:   make(map[int64]team.Team),
		keys:    make(map[teamKey]int64),
		rosters: make(map[int64]team.Roster),
		members: make(map[int64][]team.MemberInfo),
		stats:   make(map[int64][]team.StatDetail),
		history: make(map[int64][]team.MatchHistorySummary),
	}
}

func (r *TeamRepository) GetByFullID(_ context.Context, region, fullID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.keys[teamKey{region: region, fullID: fullID}]
	if !ok {
		return team.Team{}, false, nil
	}
	return r.teams[id], true, nil
}

// Replace drops the stored team with its children and inserts snapshot with
// fresh ids, like the delete-then-insert it mirrors.
func (r *TeamRepository) Replace(_ context.Context, snapshot team.Snapshot) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := teamKey{region: snapshot.Team.Region, fullID: snapshot.Team.FullID}
	if id, ok := r.keys[key]; ok {
		r.deleteTeamLocked(id)
	}

	stored := cloneTeamSnapshot(snapshot)
	stored.Team.ID = r.id()
	stored.Roster.ID = r.id()
	stored.Roster.TeamID = stored.Team.ID
	for i := range stored.Members {
		stored.Members[i].ID = r.id()
		stored.Members[i].RosterID = stored.Roster.ID
	}
	for i := range stored.StatDetails {
		stored.StatDetails[i].ID = r.id()
		stored.StatDetails[i].TeamID = stored.Team.ID
	}
	for i := range stored.MatchHistory {
		stored.MatchHistory[i].ID = r.id()
		stored.MatchHistory[i].TeamID = stored.Team.ID
	}

	r.teams[stored.Team.ID] = stored.Team
	r.keys[key] = stored.Team.ID
	r.rosters[stored.Team.ID] = stored.Roster
	r.members[stored.Roster.ID] = stored.Members
	r.stats[stored.Team.ID] = stored.StatDetails
	r.history[stored.Team.ID] = stored.MatchHistory
	return stored.Team, nil
}

func (r *TeamRepository) GetSnapshot(_ context.Context, region, fullID string) (team.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.keys[teamKey{region: region, fullID: fullID}]
	if !ok {
		return team.Snapshot{}, false, nil
	}
	roster := r.rosters[id]
	return cloneTeamSnapshot(team.Snapshot{
		Team:         r.teams[id],
		Roster:       roster,
		Members:      r.members[roster.ID],
		StatDetails:  r.stats[id],
		MatchHistory: r.history[id],
	}), true, nil
}

func (r *TeamRepository) List(_ context.Context, filter team.Filter) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]team.Team, 0, len(r.teams))
	for id, t := range r.teams {
		if filter.Region != "" && t.Region != filter.Region {
			continue
		}
		if filter.MemberID != 0 && !hasMember(r.members[r.rosters[id].ID], filter.MemberID) {
			continue
		}
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})

	start, end := pageBounds(len(all), filter.Page, filter.PageSize)
	return append([]team.Team(nil), all[start:end]...), nil
}

func (r *TeamRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id := range r.teams {
		r.deleteTeamLocked(id)
	}
	return nil
}

func (r *TeamRepository) deleteTeamLocked(id int64) {
	t, ok := r.teams[id]
	if !ok {
		return
	}
	if roster, ok := r.rosters[id]; ok {
		delete(r.members, roster.ID)
		delete(r.rosters, id)
	}
	delete(r.stats, id)
	delete(r.history, id)
	delete(r.keys, teamKey{region: t.Region, fullID: t.FullID})
	delete(r.teams, id)
}

func (r *TeamRepository) id() int64 {
	r.nextID++
	return r.nextID
}

func hasMember(members []team.MemberInfo, playerID int64) bool {
	for _, m := range members {
		if m.PlayerID == playerID {
			return true
		}
	}
	return false
}

func cloneTeamSnapshot(s team.Snapshot) team.Snapshot {
	copied := s
	if s.Team.LastGameDate != nil {
		v := *s.Team.LastGameDate
		copied.Team.LastGameDate = &v
	}
	copied.Members = append([]team.MemberInfo(nil), s.Members...)
	copied.StatDetails = append([]team.StatDetail(nil), s.StatDetails...)
	copied.MatchHistory = append([]team.MatchHistorySummary(nil), s.MatchHistory...)
	return copied
}
