package storage

import (
	"fmt"
)

// MoveRecord is a single applied move inside a session.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	Seq       int
	Timestamp int64 // milliseconds since session start
	Notation  string
	Source    string // "key", "drag", "scramble", "replay"
}

// MoveRepository provides operations on recorded moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Record stores an applied move.
func (r *MoveRepository) Record(sessionID string, seq int, tsMillis int64, notation, source string) error {
	_, err := r.db.Exec(`
		INSERT INTO moves (session_id, seq, ts_ms, notation, source)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, seq, tsMillis, notation, source)
	if err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}
	return nil
}

// GetBySession retrieves all moves for a session, in application order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, seq, ts_ms, notation, source
		FROM moves
		WHERE session_id = ?
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.Seq, &m.Timestamp, &m.Notation, &m.Source); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}
