package store

import (
	"database/sql"
	"fmt"
	"teamhub/types"
)

// InsertMessage stores a chat message and returns it with its generated id
// and created_at timestamp.
func (s *Store) InsertMessage(chatID, userID int, content string) (*types.Message, error) {
	message := types.Message{
		ChatID:  chatID,
		UserID:  userID,
		Content: content,
	}

	query := `INSERT INTO messages (chat_id, user_id, content) VALUES (?, ?, ?) RETURNING id, created_at`
	err := s.db.QueryRow(query, chatID, userID, content).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// EditMessage replaces the content of the author's own message and bumps
// updated_at.
func (s *Store) EditMessage(messageID, userID int, content string) error {
	res, err := s.db.Exec(
		`UPDATE messages SET content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ? AND is_deleted = 0`,
		content, messageID, userID,
	)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return fmt.Errorf("message %d not found for user %d", messageID, userID)
	}
	return nil
}

// SoftDeleteMessage flips is_deleted; the content stays in place.
func (s *Store) SoftDeleteMessage(messageID, userID int) error {
	res, err := s.db.Exec(
		`UPDATE messages SET is_deleted = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ?`,
		messageID, userID,
	)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return fmt.Errorf("message %d not found for user %d", messageID, userID)
	}
	return nil
}

func (s *Store) GetMessage(messageID int) (*types.Message, error) {
	var message types.Message
	query := `SELECT id, chat_id, user_id, content, created_at, updated_at, is_deleted FROM messages WHERE id = ?`
	err := s.db.QueryRow(query, messageID).Scan(
		&message.ID, &message.ChatID, &message.UserID, &message.Content,
		&message.CreatedAt, &message.UpdatedAt, &message.IsDeleted,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}
