package hub

import (
	"sort"
	"sync"
)

type Membership struct {
	TeamID int
	UserID int
}

// Registry is the sole source of truth for who is online in which team.
// Keyed (team, user) -> connection; at most one live handle per pair, a
// rejoin replaces the previous handle without disconnecting it.
type Registry struct {
	mu     sync.Mutex
	byTeam map[int]map[int]*Client
}

func NewRegistry() *Registry {
	return &Registry{byTeam: map[int]map[int]*Client{}}
}

func (r *Registry) Register(teamID, userID int, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.byTeam[teamID]
	if !ok {
		team = map[int]*Client{}
		r.byTeam[teamID] = team
	}
	team[userID] = client
}

func (r *Registry) Unregister(teamID, userID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.byTeam[teamID]
	if !ok {
		return
	}
	delete(team, userID)
	if len(team) == 0 {
		delete(r.byTeam, teamID)
	}
}

// UnregisterConn removes every mapping held by the given connection and
// returns the removed keys so the caller can emit per-team offline
// notifications. Entries replaced by a newer handle are left alone, so a
// stale connection's teardown cannot evict the live one.
//
// The scan is O(total online users), which is fine at team-chat scale.
func (r *Registry) UnregisterConn(client *Client) []Membership {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []Membership
	for teamID, team := range r.byTeam {
		for userID, c := range team {
			if c == client {
				delete(team, userID)
				removed = append(removed, Membership{TeamID: teamID, UserID: userID})
			}
		}
		if len(team) == 0 {
			delete(r.byTeam, teamID)
		}
	}
	return removed
}

// OnlineUserIDs returns a sorted snapshot of the team's online users.
func (r *Registry) OnlineUserIDs(teamID int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	userIDs := []int{}
	for userID := range r.byTeam[teamID] {
		userIDs = append(userIDs, userID)
	}
	sort.Ints(userIDs)
	return userIDs
}
