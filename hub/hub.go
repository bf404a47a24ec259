package hub

import (
	"sync"
	"teamhub/types"
)

// Store is the durable-store surface the socket layer needs. The sqlite
// store.Store satisfies it; tests substitute an in-memory fake.
type Store interface {
	Authenticate(username, password string) (*types.Principal, error)
	IsTeamMember(teamID, userID int) (bool, error)
	IsChatMember(chatID, userID int) (bool, error)
	InsertMessage(chatID, userID int, content string) (*types.Message, error)
	LoadWhiteboard(teamID int) (string, error)
	ClearWhiteboard(teamID int) error
}

// Hub owns all ephemeral socket state: the presence registry, the room
// membership sets and every connected client's subscriptions.
type Hub struct {
	store     Store
	jwtSecret []byte

	registry *Registry

	mu            sync.Mutex
	rooms         map[string]map[*Client]bool
	subscriptions map[*Client]map[string]bool
}

func New(store Store, jwtSecret []byte) *Hub {
	return &Hub{
		store:         store,
		jwtSecret:     jwtSecret,
		registry:      NewRegistry(),
		rooms:         map[string]map[*Client]bool{},
		subscriptions: map[*Client]map[string]bool{},
	}
}

// Registry exposes the presence table for read-side callers and tests.
func (h *Hub) Registry() *Registry {
	return h.registry
}
