package storage

import (
	"fmt"
)

// GestureRecord captures one drag gesture attempt, committed or not.
type GestureRecord struct {
	GestureID     int64
	SessionID     string
	Timestamp     int64 // milliseconds since session start
	ReferenceFace string
	TargetFace    string
	Notation      string
	Confidence    float64
	Torque        float64
	Committed     bool
}

// GestureRepository provides operations on recorded gestures.
type GestureRepository struct {
	db *DB
}

// NewGestureRepository creates a new gesture repository.
func NewGestureRepository(db *DB) *GestureRepository {
	return &GestureRepository{db: db}
}

// Record stores a gesture attempt.
func (r *GestureRepository) Record(g GestureRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO gestures (session_id, ts_ms, reference_face, target_face, notation, confidence, torque, committed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, g.SessionID, g.Timestamp, g.ReferenceFace, g.TargetFace, g.Notation, g.Confidence, g.Torque, g.Committed)
	if err != nil {
		return fmt.Errorf("failed to record gesture: %w", err)
	}
	return nil
}

// GetBySession retrieves all gestures for a session, in time order.
func (r *GestureRepository) GetBySession(sessionID string) ([]GestureRecord, error) {
	rows, err := r.db.Query(`
		SELECT gesture_id, session_id, ts_ms, reference_face, target_face, notation, confidence, torque, committed
		FROM gestures
		WHERE session_id = ?
		ORDER BY ts_ms ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get gestures: %w", err)
	}
	defer rows.Close()

	var gestures []GestureRecord
	for rows.Next() {
		var g GestureRecord
		if err := rows.Scan(&g.GestureID, &g.SessionID, &g.Timestamp, &g.ReferenceFace, &g.TargetFace, &g.Notation, &g.Confidence, &g.Torque, &g.Committed); err != nil {
			return nil, fmt.Errorf("failed to scan gesture: %w", err)
		}
		gestures = append(gestures, g)
	}

	return gestures, rows.Err()
}
