package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedrag"
	"github.com/SeamusWaldron/cubedrag/internal/recorder"
	"github.com/SeamusWaldron/cubedrag/internal/storage"
)

var playScrambleLen int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive keyboard play mode",
	Long: `Start an interactive TUI for playing the cube with keyboard moves.

Keyboard shortcuts:
  u/d/f/b/r/l - Turn a face clockwise
  U/D/F/B/R/L - Turn a face counterclockwise
  s           - Scramble the cube
  z           - Undo the last move
  q/Esc       - Quit

Every applied move is recorded to the session database.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playScrambleLen, "scramble-length", 25, "Number of moves per scramble")
}

type playModel struct {
	state   *cubedrag.CubeState
	session *recorder.Session

	solvedOnce bool // the cube returned to solved after a scramble
	err        error
	quitting   bool
}

func newPlayModel(db *storage.DB) *playModel {
	return &playModel{
		state:   cubedrag.NewSolvedState(),
		session: recorder.NewSession(db),
	}
}

func (m *playModel) Init() tea.Cmd {
	if _, err := m.session.Start(""); err != nil {
		m.err = err
	}
	return nil
}

// applyMove applies a move to the cube and records it.
func (m *playModel) applyMove(move cubedrag.Move, source string) {
	next, err := m.state.Apply(move)
	if err != nil {
		m.err = err
		return
	}
	m.state = next
	m.err = nil

	if err := m.session.RecordMove(move, source); err != nil {
		m.err = err
	}
	if m.state.IsSolved() && m.state.MoveCount() > 0 {
		m.solvedOnce = true
	}
}

func (m *playModel) scramble() {
	moves, err := cubedrag.NewScramble(playScrambleLen, nil)
	if err != nil {
		m.err = err
		return
	}
	next, err := m.state.Scramble(moves)
	if err != nil {
		m.err = err
		return
	}
	m.state = next
	m.err = nil
	m.solvedOnce = false

	for _, move := range moves {
		if err := m.session.RecordMove(move, "scramble"); err != nil {
			m.err = err
			return
		}
	}
}

func (m *playModel) undo() {
	last, ok := m.state.LastMove()
	if !ok {
		return
	}
	m.applyMove(last.Inverse(), "key")
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.session.State() == recorder.StateRecording {
				if err := m.session.End(m.state.IsSolved()); err != nil {
					m.err = err
				}
			}
			return m, tea.Quit

		case "s":
			m.scramble()
			return m, nil

		case "z":
			m.undo()
			return m, nil
		}

		if len(key) == 1 {
			face, err := cubedrag.ParseFace(key)
			if err == nil {
				dir := cubedrag.Clockwise
				if key == strings.ToUpper(key) {
					dir = cubedrag.Counterclockwise
				}
				m.applyMove(cubedrag.Move{Face: face, Direction: dir}, "key")
				return m, nil
			}
		}
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		msg := "Goodbye!\n"
		if m.solvedOnce {
			msg = "Solved in " + fmt.Sprint(m.state.MoveCount()) + " moves. " + msg
		}
		return msg
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubedrag play"))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.state, 0, false))
	b.WriteString("\n")

	b.WriteString(renderProgress(m.state))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Moves: %d  ", m.state.MoveCount()))
	b.WriteString(renderHistory(m.state, 12))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("u/d/f/b/r/l turn CW | U/D/F/B/R/L turn CCW | s scramble | z undo | q quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	model := newPlayModel(db)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
