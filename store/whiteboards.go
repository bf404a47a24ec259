package store

import "database/sql"

// SaveWhiteboard upserts the latest snapshot for a team's board.
func (s *Store) SaveWhiteboard(teamID int, data string) error {
	_, err := s.db.Exec(
		`INSERT INTO whiteboards (team_id, data) VALUES (?, ?)
		 ON CONFLICT(team_id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		teamID, data,
	)
	return err
}

func (s *Store) LoadWhiteboard(teamID int) (string, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM whiteboards WHERE team_id = ?`, teamID).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return data, nil
}

// ClearWhiteboard drops the stored snapshot so a reconnecting client starts
// from an empty board.
func (s *Store) ClearWhiteboard(teamID int) error {
	_, err := s.db.Exec(`DELETE FROM whiteboards WHERE team_id = ?`, teamID)
	return err
}
