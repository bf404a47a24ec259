package store

func (s *Store) CreateTeam(name string, createdBy int) (int, error) {
	var teamID int
	query := `INSERT INTO teams (name, created_by) VALUES (?, ?) RETURNING id`
	err := s.db.QueryRow(query, name, createdBy).Scan(&teamID)
	if err != nil {
		return 0, err
	}
	return teamID, nil
}

func (s *Store) AddTeamMember(teamID, userID int) error {
	_, err := s.db.Exec(`INSERT INTO team_members (team_id, user_id) VALUES (?, ?)`, teamID, userID)
	return err
}

func (s *Store) IsTeamMember(teamID, userID int) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM team_members WHERE team_id = ? AND user_id = ?`
	err := s.db.QueryRow(query, teamID, userID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateChat(name, chatType string, createdBy int) (int, error) {
	var chatID int
	query := `INSERT INTO chats (name, type, created_by) VALUES (?, ?, ?) RETURNING id`
	err := s.db.QueryRow(query, name, chatType, createdBy).Scan(&chatID)
	if err != nil {
		return 0, err
	}
	return chatID, nil
}

func (s *Store) AddChatMember(chatID, userID int) error {
	_, err := s.db.Exec(`INSERT INTO chat_members (chat_id, user_id) VALUES (?, ?)`, chatID, userID)
	return err
}

func (s *Store) IsChatMember(chatID, userID int) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM chat_members WHERE chat_id = ? AND user_id = ?`
	err := s.db.QueryRow(query, chatID, userID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
