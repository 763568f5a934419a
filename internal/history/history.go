package history

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"twentyone/internal/game"
)

type Round struct {
	Round       int
	Outcome     string
	HumanValue  int
	DealerValue int
	HumanWins   int
	DealerWins  int
}

// SQLiteRepository keeps the rounds of one session. It implements
// game.Ledger.
type SQLiteRepository struct {
	db        *sql.DB
	sessionID string
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{
		db:        db,
		sessionID: uuid.New().String(),
	}
}

func (r *SQLiteRepository) SessionID() string {
	return r.sessionID
}

func (r *SQLiteRepository) RecordRound(res game.RoundResult) error {
	_, err := r.db.Exec(`
		INSERT INTO rounds (session_id, round, outcome, human_value, dealer_value, human_wins, dealer_wins)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.sessionID, res.Round, res.Outcome.String(), res.HumanValue, res.DealerValue,
		res.HumanWins, res.DealerWins)

	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Summary() (game.Summary, error) {
	var s game.Summary

	err := r.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(outcome IN (?, ?)), 0),
			COALESCE(SUM(outcome IN (?, ?)), 0),
			COALESCE(SUM(outcome = ?), 0)
		FROM rounds WHERE session_id = ?
	`,
		game.OutcomeDealerBusted.String(), game.OutcomeHumanHigher.String(),
		game.OutcomeHumanBusted.String(), game.OutcomeDealerHigher.String(),
		game.OutcomeTie.String(),
		r.sessionID,
	).Scan(&s.Rounds, &s.HumanWins, &s.DealerWins, &s.Ties)

	if err != nil {
		return game.Summary{}, fmt.Errorf("failed to summarize session: %w", err)
	}
	return s, nil
}

func (r *SQLiteRepository) Rounds() ([]Round, error) {
	rows, err := r.db.Query(`
		SELECT round, outcome, human_value, dealer_value, human_wins, dealer_wins
		FROM rounds
		WHERE session_id = ?
		ORDER BY round
	`, r.sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var rd Round
		if err := rows.Scan(&rd.Round, &rd.Outcome, &rd.HumanValue, &rd.DealerValue,
			&rd.HumanWins, &rd.DealerWins); err != nil {
			return nil, err
		}
		rounds = append(rounds, rd)
	}

	return rounds, rows.Err()
}
