package hub

import (
	"fmt"
	"sync"
	"teamhub/types"
)

type fakeUser struct {
	id       int
	password string
	avatar   string
}

// fakeStore is an in-memory stand-in for the sqlite store.
type fakeStore struct {
	mu            sync.Mutex
	users         map[string]fakeUser
	teamMembers   map[[2]int]bool // (team, user)
	chatMembers   map[[2]int]bool // (chat, user)
	messages      []types.Message
	whiteboards   map[int]string
	authCalls     int
	nextMessageID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       map[string]fakeUser{},
		teamMembers: map[[2]int]bool{},
		chatMembers: map[[2]int]bool{},
		whiteboards: map[int]string{},
	}
}

func (f *fakeStore) addUser(username, password string, id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[username] = fakeUser{id: id, password: password, avatar: username + ".png"}
}

func (f *fakeStore) addTeamMember(teamID, userID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teamMembers[[2]int{teamID, userID}] = true
}

func (f *fakeStore) addChatMember(chatID, userID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatMembers[[2]int{chatID, userID}] = true
}

func (f *fakeStore) messageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func (f *fakeStore) authenticateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authCalls
}

func (f *fakeStore) Authenticate(username, password string) (*types.Principal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authCalls++
	user, ok := f.users[username]
	if !ok || user.password != password {
		return nil, nil
	}
	return &types.Principal{ID: user.id, Username: username, Avatar: user.avatar}, nil
}

func (f *fakeStore) IsTeamMember(teamID, userID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.teamMembers[[2]int{teamID, userID}], nil
}

func (f *fakeStore) IsChatMember(chatID, userID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chatMembers[[2]int{chatID, userID}], nil
}

func (f *fakeStore) InsertMessage(chatID, userID int, content string) (*types.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextMessageID++
	message := types.Message{
		ID:        f.nextMessageID,
		ChatID:    chatID,
		UserID:    userID,
		Content:   content,
		CreatedAt: fmt.Sprintf("2026-01-01 00:00:%02d", f.nextMessageID),
	}
	f.messages = append(f.messages, message)
	return &message, nil
}

func (f *fakeStore) LoadWhiteboard(teamID int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.whiteboards[teamID], nil
}

func (f *fakeStore) ClearWhiteboard(teamID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.whiteboards, teamID)
	return nil
}
