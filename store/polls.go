package store

import (
	"errors"
	"strings"
	"teamhub/types"
)

// ErrDuplicateVote is returned when a user votes twice in the same poll.
var ErrDuplicateVote = errors.New("user already voted in this poll")

func (s *Store) CreatePoll(teamID int, question string, createdBy int, options []string) (int, error) {
	var pollID int
	query := `INSERT INTO polls (team_id, question, created_by) VALUES (?, ?, ?) RETURNING id`
	err := s.db.QueryRow(query, teamID, question, createdBy).Scan(&pollID)
	if err != nil {
		return 0, err
	}

	for _, text := range options {
		if _, err := s.db.Exec(`INSERT INTO poll_options (poll_id, text) VALUES (?, ?)`, pollID, text); err != nil {
			return 0, err
		}
	}
	return pollID, nil
}

// InsertPollVote records one vote. The UNIQUE(poll_id, user_id) constraint
// enforces at most one vote per user per poll; the broadcast layer only
// relays deltas, this table is the ledger.
func (s *Store) InsertPollVote(pollID, optionID, userID int) error {
	_, err := s.db.Exec(
		`INSERT INTO poll_votes (poll_id, option_id, user_id) VALUES (?, ?, ?)`,
		pollID, optionID, userID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateVote
		}
		return err
	}
	return nil
}

// VoteCounts returns the authoritative tally per option.
func (s *Store) VoteCounts(pollID int) ([]types.VoteCount, error) {
	rows, err := s.db.Query(
		`SELECT option_id, COUNT(*) FROM poll_votes WHERE poll_id = ? GROUP BY option_id`,
		pollID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []types.VoteCount
	for rows.Next() {
		var count types.VoteCount
		if err := rows.Scan(&count.OptionID, &count.Votes); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}
	return counts, rows.Err()
}
