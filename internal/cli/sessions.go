package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedrag"
	"github.com/SeamusWaldron/cubedrag/internal/storage"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded play sessions",
	Long:  `Display recent play sessions with move counts and solved status.`,
	RunE:  runSessions,
}

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Re-apply the moves of a recorded session against a solved cube and
print the resulting state, move by move with --verbose.

Gesture-entered moves are marked with their recorded confidence.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum sessions to list")

	rootCmd.AddCommand(replayCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	sessions, err := repo.List(sessionsLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %-9s  %5s  %s\n", "SESSION", "STARTED", "DURATION", "MOVES", "SOLVED")
	for _, s := range sessions {
		duration := "-"
		if s.EndedAt != nil {
			duration = s.EndedAt.Sub(s.StartedAt).Round(time.Second).String()
		}
		solved := ""
		if s.Solved {
			solved = "yes"
		}
		fmt.Printf("%-36s  %-19s  %-9s  %5d  %s\n",
			s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration, s.MoveCount, solved)
	}

	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID := args[0]
	if _, err := storage.NewSessionRepository(db).Get(sessionID); err != nil {
		return err
	}

	records, err := storage.NewMoveRepository(db).GetBySession(sessionID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("Session has no moves.")
		return nil
	}

	state := cubedrag.NewSolvedState()
	for _, rec := range records {
		move, err := cubedrag.ParseMove(rec.Notation)
		if err != nil {
			return fmt.Errorf("move %d has bad notation %q: %w", rec.Seq, rec.Notation, err)
		}
		state, err = state.Apply(move)
		if err != nil {
			return fmt.Errorf("move %d (%s) failed: %w", rec.Seq, rec.Notation, err)
		}
		if verbose {
			fmt.Printf("%4d  %-6s  %-8s  +%dms\n", rec.Seq, rec.Notation, rec.Source, rec.Timestamp)
		}
	}

	fmt.Print(state.String())
	fmt.Println()
	fmt.Printf("Moves: %d  Progress: %s\n", len(records), cubedrag.DetectProgress(state).DisplayName())

	gestures, err := storage.NewGestureRepository(db).GetBySession(sessionID)
	if err != nil {
		return err
	}
	if len(gestures) > 0 {
		committed := 0
		for _, g := range gestures {
			if g.Committed {
				committed++
			}
		}
		fmt.Printf("Gestures: %d recorded, %d committed\n", len(gestures), committed)
		if verbose {
			for _, g := range gestures {
				status := "cancelled"
				if g.Committed {
					status = g.Notation
				}
				fmt.Printf("  +%6dms  %s -> %s  %-9s  confidence %.2f  torque %.1f\n",
					g.Timestamp, g.ReferenceFace, g.TargetFace, status, g.Confidence, g.Torque)
			}
		}
	}

	return nil
}
