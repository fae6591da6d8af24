// Package recorder manages play session recording over the storage layer.
package recorder

import (
	"fmt"
	"sync"
	"time"

	"github.com/SeamusWaldron/cubedrag"
	"github.com/SeamusWaldron/cubedrag/internal/storage"
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session manages a play recording session.
type Session struct {
	db *storage.DB

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository
	gestureRepo *storage.GestureRepository
}

// NewSession creates a new session manager.
func NewSession(db *storage.DB) *Session {
	return &Session{
		db:          db,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
		gestureRepo: storage.NewGestureRepository(db),
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// ElapsedMs returns the elapsed time since session start in milliseconds.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateRecording {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}

// MoveCount returns the number of moves recorded so far.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// Start starts a new play session. The scramble may be empty when the
// session starts from a solved cube.
func (s *Session) Start(scramble string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", fmt.Errorf("session already in progress")
	}

	sessionID, err := s.sessionRepo.Create(scramble)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionID = sessionID
	s.startTime = time.Now()
	s.moveIndex = 0
	s.state = StateRecording

	return sessionID, nil
}

// RecordMove records an applied move. Source identifies how the move was
// entered: "key", "drag", "scramble" or "replay".
func (s *Session) RecordMove(m cubedrag.Move, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return fmt.Errorf("no session in progress")
	}

	tsMs := time.Since(s.startTime).Milliseconds()
	if err := s.moveRepo.Record(s.sessionID, s.moveIndex, tsMs, m.Notation(), source); err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}

	s.moveIndex++
	return nil
}

// RecordGesture records a drag gesture attempt. Committed gestures also
// produce a RecordMove; uncommitted ones only leave this trace.
func (s *Session) RecordGesture(reference, target cubedrag.Face, notation string, confidence, torque float64, committed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return fmt.Errorf("no session in progress")
	}

	g := storage.GestureRecord{
		SessionID:     s.sessionID,
		Timestamp:     time.Since(s.startTime).Milliseconds(),
		ReferenceFace: reference.String(),
		TargetFace:    target.String(),
		Notation:      notation,
		Confidence:    confidence,
		Torque:        torque,
		Committed:     committed,
	}
	if err := s.gestureRepo.Record(g); err != nil {
		return fmt.Errorf("failed to record gesture: %w", err)
	}

	return nil
}

// End ends the current session, storing the final move count and whether
// the cube finished solved.
func (s *Session) End(solved bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return fmt.Errorf("no session in progress")
	}

	if err := s.sessionRepo.End(s.sessionID, s.moveIndex, solved); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded
	return nil
}
