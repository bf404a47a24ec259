package store

import (
	"database/sql"
)

// Store wraps the relational backing store for users, teams, chats,
// messages, polls and whiteboards.
type Store struct {
	db *sql.DB
}

func New(database *sql.DB) (*Store, error) {
	s := &Store{db: database}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}
