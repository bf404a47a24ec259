package hub

import "encoding/json"

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type ChatError struct {
	Message string `json:"message"`
}

// credentials is the auth fragment shared by authenticated client events.
// Either a password or a previously issued session token is accepted.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

type Connected struct {
	SID string `json:"sid"`
}

type Session struct {
	Token    string `json:"token"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

type JoinTeamClient struct {
	credentials
	TeamID int `json:"team_id"`
}

type JoinedTeam struct {
	Status      string `json:"status"`
	TeamID      int    `json:"team_id"`
	OnlineUsers []int  `json:"online_users"`
}

type UserOnline struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	TeamID   int    `json:"team_id"`
}

type UserOffline struct {
	UserID int `json:"user_id"`
	TeamID int `json:"team_id"`
}

type SendMessageClient struct {
	credentials
	TeamID  int    `json:"team_id"`
	ChatID  int    `json:"chat_id"`
	Content string `json:"content"`
}

type NewMessage struct {
	ID        int    `json:"id"`
	ChatID    int    `json:"chat_id"`
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type TypingClient struct {
	Username string `json:"username"`
	TeamID   int    `json:"team_id"`
	ChatID   int    `json:"chat_id"`
	IsTyping bool   `json:"is_typing"`
}

type UserTyping struct {
	Username string `json:"username"`
	ChatID   int    `json:"chat_id"`
	IsTyping bool   `json:"is_typing"`
}

type JoinWhiteboardClient struct {
	credentials
	TeamID int `json:"team_id"`
}

type JoinedWhiteboard struct {
	Status string `json:"status"`
	TeamID int    `json:"team_id"`
	Data   string `json:"data,omitempty"`
}

type LeaveWhiteboardClient struct {
	TeamID int `json:"team_id"`
}

type WhiteboardDrawClient struct {
	TeamID   int             `json:"team_id"`
	Element  json.RawMessage `json:"element"`
	Username string          `json:"username"`
}

type WhiteboardUpdate struct {
	Username string          `json:"username"`
	Element  json.RawMessage `json:"element"`
}

type WhiteboardCursorClient struct {
	TeamID   int      `json:"team_id"`
	Username string   `json:"username"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
}

type WhiteboardCursorUpdate struct {
	Username string  `json:"username"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type WhiteboardClearClient struct {
	credentials
	TeamID int `json:"team_id"`
}

type WhiteboardCleared struct {
	Username string `json:"username"`
	TeamID   int    `json:"team_id"`
}

type PollCreatedClient struct {
	TeamID int             `json:"team_id"`
	Poll   json.RawMessage `json:"poll"`
}

type PollVoteClient struct {
	TeamID   int    `json:"team_id"`
	PollID   int    `json:"poll_id"`
	OptionID int    `json:"option_id"`
	Username string `json:"username"`
	Votes    int    `json:"votes"`
}

type PollUpdated struct {
	PollID   int    `json:"poll_id"`
	OptionID int    `json:"option_id"`
	Votes    int    `json:"votes"`
	Voter    string `json:"voter"`
}

type JoinRequestCreatedClient struct {
	TeamID  int             `json:"team_id"`
	Request json.RawMessage `json:"request"`
}

type NewJoinRequest struct {
	TeamID  int             `json:"team_id"`
	Request json.RawMessage `json:"request"`
}

type JoinRequestApprovedClient struct {
	TeamID   int    `json:"team_id"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

type MemberJoined struct {
	TeamID   int    `json:"team_id"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

type GetOnlineUsersClient struct {
	TeamID int `json:"team_id"`
}

type OnlineUsersList struct {
	TeamID      int   `json:"team_id"`
	OnlineUsers []int `json:"online_users"`
}
