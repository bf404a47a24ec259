package store

import (
	"database/sql"
	"teamhub/types"

	"golang.org/x/crypto/bcrypt"
)

// Authenticate checks credentials against the users table and returns the
// matching principal, or nil when the username is unknown or the password
// does not match.
func (s *Store) Authenticate(username, password string) (*types.Principal, error) {
	var principal types.Principal
	var passwordHash string
	var avatar sql.NullString

	query := `SELECT id, username, password_hash, avatar FROM users WHERE username = ?`
	err := s.db.QueryRow(query, username).Scan(&principal.ID, &principal.Username, &passwordHash, &avatar)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		return nil, nil
	}

	principal.Avatar = avatar.String
	return &principal, nil
}

func (s *Store) GetUser(userID int) (*types.Principal, error) {
	var principal types.Principal
	var avatar sql.NullString

	query := `SELECT id, username, avatar FROM users WHERE id = ?`
	err := s.db.QueryRow(query, userID).Scan(&principal.ID, &principal.Username, &avatar)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	principal.Avatar = avatar.String
	return &principal, nil
}

func (s *Store) CreateUser(username, password string) (int, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	var userID int
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id`
	err = s.db.QueryRow(query, username, string(hashedPassword)).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}
