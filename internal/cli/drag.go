package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedrag"
	"github.com/SeamusWaldron/cubedrag/internal/recorder"
	"github.com/SeamusWaldron/cubedrag/internal/storage"
)

var dragScrambleLen int

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Interactive mouse-drag play mode",
	Long: `Start an interactive TUI where faces are turned by dragging with the
mouse from one face of the net onto an adjacent one.

Press on a face, drag onto a neighboring face, and release to commit the
rotation. Dragging onto a diagonal face or releasing early cancels.

Keyboard shortcuts:
  s       - Scramble the cube
  q/Esc   - Quit`,
	RunE: runDrag,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	dragCmd.Flags().IntVar(&dragScrambleLen, "scramble-length", 25, "Number of moves per scramble")
}

// Net cell layout. Each sticker is a 2-character cell; the net starts
// netTop lines below the top of the view.
const (
	netTop    = 2
	cellWidth = 2
)

// netFrames gives each face's 3x3 block position in the net, in cell
// coordinates (col, row of the block's top-left sticker).
var netFrames = map[cubedrag.Face][2]int{
	cubedrag.FaceUp:    {3, 0},
	cubedrag.FaceLeft:  {0, 3},
	cubedrag.FaceFront: {3, 3},
	cubedrag.FaceRight: {6, 3},
	cubedrag.FaceBack:  {9, 3},
	cubedrag.FaceDown:  {3, 6},
}

// netOrientations maps each face to the cube-space directions of the
// net's rightward and downward sticker steps, matching the renderer's
// row-major sticker order.
var netOrientations = map[cubedrag.Face][2]mgl64.Vec3{
	cubedrag.FaceUp:    {{1, 0, 0}, {0, 0, 1}},
	cubedrag.FaceDown:  {{1, 0, 0}, {0, 0, -1}},
	cubedrag.FaceFront: {{1, 0, 0}, {0, -1, 0}},
	cubedrag.FaceBack:  {{-1, 0, 0}, {0, -1, 0}},
	cubedrag.FaceRight: {{0, 0, -1}, {0, -1, 0}},
	cubedrag.FaceLeft:  {{0, 0, 1}, {0, -1, 0}},
}

// hitTest resolves a terminal coordinate to a face intersection on the
// unit cube, or reports a miss. It is the TUI's stand-in for raycasting.
func hitTest(x, y int) (cubedrag.FaceIntersection, bool) {
	cellCol := x / cellWidth
	cellRow := y - netTop
	if cellRow < 0 {
		return cubedrag.FaceIntersection{}, false
	}

	for face, frame := range netFrames {
		col := cellCol - frame[0]
		row := cellRow - frame[1]
		if col < 0 || col > 2 || row < 0 || row > 2 {
			continue
		}

		orient := netOrientations[face]
		// Sticker centers sit at -2/3, 0, +2/3 from the face center.
		offset := func(i int) float64 { return float64(i-1) * 2.0 / 3.0 }
		point := cubedrag.FaceCenter(face).
			Add(orient[0].Mul(offset(col))).
			Add(orient[1].Mul(offset(row)))

		return cubedrag.FaceIntersection{
			Face:     face,
			Point:    point,
			Normal:   cubedrag.FaceNormal(face),
			Distance: 5.0,
		}, true
	}

	return cubedrag.FaceIntersection{}, false
}

type dragModel struct {
	orch    *cubedrag.Orchestrator
	session *recorder.Session

	dragging  bool
	refFace   cubedrag.Face
	hoverFace cubedrag.Face
	hovering  bool
	ready     bool
	lastMove  string

	err      error
	quitting bool
}

func newDragModel(db *storage.DB) *dragModel {
	return &dragModel{
		orch:    cubedrag.NewOrchestrator(),
		session: recorder.NewSession(db),
	}
}

func (m *dragModel) Init() tea.Cmd {
	if _, err := m.session.Start(""); err != nil {
		m.err = err
	}
	return nil
}

func (m *dragModel) scramble() {
	moves, err := cubedrag.NewScramble(dragScrambleLen, nil)
	if err != nil {
		m.err = err
		return
	}
	next, err := m.orch.State().Scramble(moves)
	if err != nil {
		m.err = err
		return
	}
	m.orch.SetState(next)
	m.err = nil

	for _, move := range moves {
		if err := m.session.RecordMove(move, "scramble"); err != nil {
			m.err = err
			return
		}
	}
}

func (m *dragModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		hit, ok := hitTest(msg.X, msg.Y)
		if !ok {
			return
		}
		m.orch.PointerDown(hit)
		m.dragging = true
		m.refFace = hit.Face
		m.hoverFace = hit.Face
		m.hovering = true
		m.ready = false

	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		hit, ok := hitTest(msg.X, msg.Y)
		if !ok {
			return
		}
		update := m.orch.PointerMove(hit)
		if !update.Accepted {
			return
		}
		m.hoverFace = hit.Face
		m.hovering = true
		m.ready = update.ReadyToRotate

	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		m.dragging = false
		target := m.hoverFace
		m.hovering = false
		m.ready = false

		update := m.orch.PointerUp()
		if update.Command == nil {
			if target != m.refFace {
				m.recordGesture(target, "", update.Vector, false)
			}
			return
		}

		move := update.Command.Move()
		m.lastMove = move.Notation()
		m.recordGesture(target, move.Notation(), update.Vector, true)
		if err := m.session.RecordMove(move, "drag"); err != nil {
			m.err = err
		}

		// No animation in the terminal; the rotation is instant.
		m.orch.RotationComplete(update.Command.Face)
	}
}

func (m *dragModel) recordGesture(target cubedrag.Face, notation string, vec *cubedrag.RotationVector, committed bool) {
	var confidence, torque float64
	if vec != nil {
		confidence = vec.Confidence
		torque = vec.Torque
	}
	if err := m.session.RecordGesture(m.refFace, target, notation, confidence, torque, committed); err != nil {
		m.err = err
	}
}

func (m *dragModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.session.State() == recorder.StateRecording {
				if err := m.session.End(m.orch.State().IsSolved()); err != nil {
					m.err = err
				}
			}
			return m, tea.Quit

		case "s":
			m.scramble()
			return m, nil
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	return m, nil
}

func (m *dragModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubedrag drag"))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.orch.State(), m.hoverFace, m.hovering))
	b.WriteString("\n")

	b.WriteString(renderProgress(m.orch.State()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Moves: %d  ", m.orch.State().MoveCount()))
	b.WriteString(renderHistory(m.orch.State(), 12))
	b.WriteString("\n")

	if m.dragging {
		line := fmt.Sprintf("Dragging from %s", m.refFace)
		if m.hovering && m.hoverFace != m.refFace {
			line += fmt.Sprintf(" over %s", m.hoverFace)
		}
		if m.ready {
			line += "  " + moveStyle.Render("release to turn")
		}
		b.WriteString(statusStyle.Render(line))
		b.WriteString("\n")
	} else if m.lastMove != "" {
		b.WriteString(statusStyle.Render("Last turn: ") + moveStyle.Render(m.lastMove))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("drag between adjacent faces to turn | s scramble | q quit"))
	b.WriteString("\n")

	return b.String()
}

func runDrag(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	model := newDragModel(db)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
