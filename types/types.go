package types

// Principal is the authenticated identity resolved for one event or request.
type Principal struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type Message struct {
	ID        int    `json:"id"`
	ChatID    int    `json:"chat_id"`
	UserID    int    `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	IsDeleted bool   `json:"is_deleted"`
}

type VoteCount struct {
	OptionID int `json:"option_id"`
	Votes    int `json:"votes"`
}

type JoinRequest struct {
	ID        int    `json:"id"`
	TeamID    int    `json:"team_id"`
	UserID    int    `json:"user_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
