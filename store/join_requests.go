package store

import "teamhub/types"

func (s *Store) CreateJoinRequest(teamID, userID int) (*types.JoinRequest, error) {
	request := types.JoinRequest{TeamID: teamID, UserID: userID}
	query := `INSERT INTO join_requests (team_id, user_id) VALUES (?, ?) RETURNING id, status, created_at`
	err := s.db.QueryRow(query, teamID, userID).Scan(&request.ID, &request.Status, &request.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *Store) SetJoinRequestStatus(requestID int, status string) error {
	_, err := s.db.Exec(
		`UPDATE join_requests SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, requestID,
	)
	return err
}
