package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	initLogging()
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// historyStatus is shared between the board's history listener and every
// copy of the bubbletea model, so availability updates survive the
// value-copy update cycle.
type historyStatus struct {
	canUndo bool
	canRedo bool
}

type model struct {
	width  int
	height int

	board  *Board
	config *Config
	hist   *historyStatus

	cursor   Cell
	panX     int
	panY     int
	cellW    int // characters per cell column, the view zoom
	zPanMode bool

	mode Mode
	help bool

	selected   *Object
	originalPX float64
	originalPY float64
	originalW  int
	originalH  int

	inputText     string
	fileOp        FileOperation
	confirmAction ConfirmAction
	confirmObject *Object
	pendingCustom Cell

	errorMessage   string
	successMessage string

	canUndo bool
	canRedo bool
}

func initialModel() model {
	config := loadConfig()
	grid := NewGrid(config.CellPx, config.WorldCols, config.WorldRows)
	board := NewBoard(grid)

	hist := &historyStatus{}
	board.history.onChange = func(canUndo, canRedo bool) {
		hist.canUndo = canUndo
		hist.canRedo = canRedo
	}

	autosave := config.GetSavePath("autosave.gridplan")
	board.persist = func(state string) {
		if err := os.WriteFile(autosave, []byte(state), 0644); err != nil {
			debugLog("persist: %v", err)
		}
	}

	m := model{
		board:  board,
		config: config,
		hist:   hist,
		cellW:  2,
		mode:   ModeStartup,
	}
	return m
}

// newBoardSetup seeds a fresh board: structural scenery first, then the
// initial history snapshot.
func (m *model) newBoardSetup() {
	g := m.board.grid
	cx, cy := g.CellOrigin(Cell{X: g.Cols / 2, Y: g.Rows / 2})
	m.board.AddImmutable(KindRock, 2, 2, cx, cy)
	m.board.AddImmutable(KindRock, 2, 2, cx-6*g.CellPx, cy+4*g.CellPx)
	m.board.InitHistory()
	m.centerOn(Cell{X: g.Cols / 2, Y: g.Rows / 2})
	m.mode = ModeNormal
}

func (m *model) viewportCells() (cols, rows int) {
	cols = maxInt(1, m.width/maxInt(1, m.cellW))
	rows = maxInt(1, m.height-1)
	return cols, rows
}

// updateViewTransform rebuilds the live screen transform from pan and
// zoom. Character cells are the screen unit: one row per cell row, cellW
// columns per cell column.
func (m *model) updateViewTransform() {
	g := m.board.grid
	zoom := Scale(float64(m.cellW)/g.CellPx, 1/g.CellPx)
	pan := Translate(-float64(m.panX)*g.CellPx, -float64(m.panY)*g.CellPx)
	g.View = zoom.Multiply(pan)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampPan()
		m.updateViewTransform()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		m.errorMessage = ""
		m.successMessage = ""

		if m.help && m.mode != ModeStartup {
			switch msg.String() {
			case "escape", "q", "?":
				m.help = false
			}
			return m, nil
		}

		switch m.mode {
		case ModeStartup:
			return m.updateStartup(msg)
		case ModeNormal, ModePaint:
			return m.updateNormal(msg)
		case ModeMove:
			return m.updateMove(msg)
		case ModeResize:
			return m.updateResize(msg)
		case ModeLabelInput, ModeCustomSize, ModeJump, ModeFileInput:
			return m.updateTextInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

func (m model) updateStartup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.newBoardSetup()
	case "o":
		m.inputText = ""
		m.fileOp = FileOpOpen
		m.mode = ModeFileInput
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		if m.config.Confirmations {
			m.confirmAction = ConfirmQuit
			m.mode = ModeConfirm
			return m, nil
		}
		return m, tea.Quit

	case "?":
		m.help = true
		return m, nil

	case "h", "j", "k", "l", "left", "down", "up", "right",
		"H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		m.handleNavigation(key, m.getMoveSpeed(key))
		if m.mode == ModePaint && !m.zPanMode {
			m.board.PaintCell(m.cursor)
		}
		return m, nil

	case "z":
		m.zPanMode = !m.zPanMode
		return m, nil

	case "+", "=":
		m.cellW = clampInt(m.cellW+1, 1, 4)
		m.clampPan()
		m.updateViewTransform()
		return m, nil
	case "-":
		m.cellW = clampInt(m.cellW-1, 1, 4)
		m.clampPan()
		m.updateViewTransform()
		return m, nil

	case " ":
		m.board.TogglePaint(m.cursor)
		return m, nil

	case "p":
		if m.mode == ModePaint {
			m.mode = ModeNormal
		} else {
			m.mode = ModePaint
			m.board.PaintCell(m.cursor)
		}
		return m, nil

	case "escape":
		m.mode = ModeNormal
		return m, nil

	case "1", "2", "3", "4", "5":
		kinds := map[string]Kind{
			"1": KindFlag, "2": KindHQ, "3": KindCity, "4": KindResource, "5": KindTrap,
		}
		kind := kinds[key]
		px, py := m.board.grid.CellOrigin(m.cursor)
		size := kindDefaultSize[kind]
		m.board.AddObject(kind, size, size, px, py, "")
		m.successMessage = kindNames[kind] + " placed"
		return m, nil

	case "6":
		m.pendingCustom = m.cursor
		m.inputText = ""
		m.mode = ModeCustomSize
		return m, nil

	case "m":
		if o := m.board.ObjectAt(m.cursor); o != nil && !o.Immutable {
			m.selected = o
			m.originalPX, m.originalPY = o.PX, o.PY
			m.mode = ModeMove
		} else {
			m.errorMessage = "no movable object here"
		}
		return m, nil

	case "s":
		if o := m.board.ObjectAt(m.cursor); o != nil && !o.Immutable {
			m.selected = o
			m.originalW, m.originalH = o.Width, o.Height
			m.originalPX, m.originalPY = o.PX, o.PY
			m.mode = ModeResize
		} else {
			m.errorMessage = "no resizable object here"
		}
		return m, nil

	case "e":
		if o := m.board.ObjectAt(m.cursor); o != nil && !o.Immutable {
			m.selected = o
			m.inputText = ""
			if o.CustomLabel {
				m.inputText = o.Label
			}
			m.mode = ModeLabelInput
		} else {
			m.errorMessage = "no object here"
		}
		return m, nil

	case "d":
		if o := m.board.ObjectAt(m.cursor); o != nil && !o.Immutable {
			if m.config.Confirmations {
				m.confirmAction = ConfirmDeleteObject
				m.confirmObject = o
				m.mode = ModeConfirm
			} else {
				m.board.DeleteObject(o)
				m.successMessage = "deleted"
			}
		} else {
			m.errorMessage = "no deletable object here"
		}
		return m, nil

	case "u":
		if !m.board.Undo() {
			m.errorMessage = "nothing to undo"
		}
		return m, nil

	case "ctrl+r":
		if !m.board.Redo() {
			m.errorMessage = "nothing to redo"
		}
		return m, nil

	case "g":
		m.inputText = ""
		m.mode = ModeJump
		return m, nil

	case "y":
		// The clipboard must see the latest state, so skip the debounce.
		m.board.PersistNow()
		url := m.config.BaseURL + "#" + m.board.Encode()
		if err := clipboard.WriteAll(url); err != nil {
			m.errorMessage = "clipboard: " + err.Error()
		} else {
			m.successMessage = "share URL copied"
		}
		return m, nil

	case "w":
		m.inputText = ""
		m.fileOp = FileOpSaveBoard
		m.mode = ModeFileInput
		return m, nil

	case "o":
		m.inputText = ""
		m.fileOp = FileOpOpen
		m.mode = ModeFileInput
		return m, nil

	case "x":
		m.inputText = ""
		m.fileOp = FileOpSavePNG
		m.mode = ModeFileInput
		return m, nil

	case "N":
		if m.config.Confirmations {
			m.confirmAction = ConfirmReset
			m.mode = ModeConfirm
		} else {
			m.board.Reset()
			m.successMessage = "board reset"
		}
		return m, nil
	}
	return m, nil
}

func (m model) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.selected == nil {
		m.mode = ModeNormal
		return m, nil
	}
	o := m.selected
	g := m.board.grid
	key := msg.String()
	switch key {
	case "h", "left":
		o.PX, o.PY = g.SnapToGrid(o.PX-g.CellPx, o.PY, o.Width, o.Height)
	case "l", "right":
		o.PX, o.PY = g.SnapToGrid(o.PX+g.CellPx, o.PY, o.Width, o.Height)
	case "k", "up":
		o.PX, o.PY = g.SnapToGrid(o.PX, o.PY-g.CellPx, o.Width, o.Height)
	case "j", "down":
		o.PX, o.PY = g.SnapToGrid(o.PX, o.PY+g.CellPx, o.Width, o.Height)
	case "enter":
		m.board.MoveObject(o, o.PX, o.PY)
		m.selected = nil
		m.mode = ModeNormal
		return m, nil
	case "escape":
		o.PX, o.PY = m.originalPX, m.originalPY
		m.board.recompute()
		m.selected = nil
		m.mode = ModeNormal
		return m, nil
	default:
		return m, nil
	}
	// Live preview of validity while dragging.
	m.board.recompute()
	m.cursor = g.PixelToCell(o.PX, o.PY)
	m.scrollCursorIntoView()
	return m, nil
}

func (m model) updateResize(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.selected == nil {
		m.mode = ModeNormal
		return m, nil
	}
	o := m.selected
	g := m.board.grid
	w, h := o.Width, o.Height
	switch msg.String() {
	case "h", "left":
		w--
	case "l", "right":
		w++
	case "k", "up":
		h--
	case "j", "down":
		h++
	case "enter":
		m.board.ResizeObject(o, o.Width, o.Height)
		m.selected = nil
		m.mode = ModeNormal
		return m, nil
	case "escape":
		o.Width, o.Height = m.originalW, m.originalH
		o.PX, o.PY = m.originalPX, m.originalPY
		m.board.recompute()
		m.selected = nil
		m.mode = ModeNormal
		return m, nil
	default:
		return m, nil
	}

	w = clampInt(w, minObjectCells, maxObjectCells)
	h = clampInt(h, minObjectCells, maxObjectCells)
	if o.Kind != KindCustom {
		// Square kinds resize uniformly in either axis.
		if w != o.Width {
			h = w
		} else {
			w = h
		}
	}
	o.Width, o.Height = w, h
	o.PX, o.PY = g.SnapToGrid(o.PX, o.PY, w, h)
	m.board.recompute()
	return m, nil
}

func (m model) updateTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.inputText = ""
		m.selected = nil
		m.mode = m.idleMode()
		return m, nil

	case tea.KeyBackspace:
		if len(m.inputText) > 0 {
			runes := []rune(m.inputText)
			m.inputText = string(runes[:len(runes)-1])
		}
		return m, nil

	case tea.KeyEnter:
		return m.commitTextInput()

	case tea.KeyRunes:
		m.inputText += string(msg.Runes)
		return m, nil

	case tea.KeySpace:
		m.inputText += " "
		return m, nil
	}
	return m, nil
}

func (m model) commitTextInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.inputText)
	mode := m.mode
	m.inputText = ""
	m.mode = m.idleMode()

	switch mode {
	case ModeLabelInput:
		if m.selected != nil {
			m.board.SetLabel(m.selected, text)
			m.successMessage = "label updated"
		}
		m.selected = nil

	case ModeCustomSize:
		w, h, ok := parseCustomSize(text)
		if !ok {
			m.errorMessage = "expected WxH, e.g. 4x7"
			return m, nil
		}
		px, py := m.board.grid.CellOrigin(m.pendingCustom)
		m.board.AddObject(KindCustom, w, h, px, py, "")
		m.successMessage = fmt.Sprintf("custom %dx%d placed", w, h)

	case ModeJump:
		c, ok := parseDisplayCell(text)
		if !ok {
			m.errorMessage = "expected x:y"
			return m, nil
		}
		m.centerOn(c)

	case ModeFileInput:
		return m.runFileOp(text)
	}
	return m, nil
}

func (m model) runFileOp(name string) (tea.Model, tea.Cmd) {
	if name == "" {
		m.errorMessage = "no filename"
		return m, nil
	}
	switch m.fileOp {
	case FileOpSavePNG:
		path := m.config.GetSavePath(name + ".png")
		if err := exportPNG(m.board, path); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "exported " + path
		}

	case FileOpSaveBoard:
		path := m.config.GetSavePath(name + ".gridplan")
		if err := os.WriteFile(path, []byte(m.board.Encode()), 0644); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "saved " + path
		}

	case FileOpOpen:
		path := m.config.GetSavePath(name + ".gridplan")
		data, err := os.ReadFile(path)
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		if m.mode == ModeStartup || len(m.board.objects) == 0 {
			m.newBoardSetup()
		}
		m.board.Restore(strings.TrimSpace(string(data)))
		m.board.InitHistory()
		m.mode = ModeNormal
		m.successMessage = "opened " + path
	}
	return m, nil
}

// idleMode is where a dismissed prompt returns to. Before the first
// board exists that is the startup screen, not the editor.
func (m *model) idleMode() Mode {
	if len(m.board.history.snapshots) == 0 {
		return ModeStartup
	}
	return ModeNormal
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		action := m.confirmAction
		m.mode = ModeNormal
		switch action {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmReset:
			m.board.Reset()
			m.successMessage = "board reset"
		case ConfirmDeleteObject:
			if m.confirmObject != nil {
				m.board.DeleteObject(m.confirmObject)
				m.confirmObject = nil
				m.successMessage = "deleted"
			}
		}
	case "n", "N", "escape", "q":
		m.confirmObject = nil
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) tea.Model {
	if m.mode != ModeNormal && m.mode != ModePaint {
		return m
	}
	switch msg.Type {
	case tea.MouseWheelUp:
		m.panY = maxInt(0, m.panY-2)
		m.clampPan()
		m.updateViewTransform()
	case tea.MouseWheelDown:
		m.panY += 2
		m.clampPan()
		m.updateViewTransform()
	case tea.MouseLeft:
		lx, ly := m.board.grid.ScreenToLocal(float64(msg.X), float64(msg.Y))
		m.cursor = m.board.grid.PointToCell(lx, ly)
		if m.mode == ModePaint {
			m.board.PaintCell(m.cursor)
		}
	}
	return m
}

func (m model) View() string {
	if m.help && m.mode != ModeStartup {
		return m.helpView()
	}
	if m.mode == ModeStartup {
		return m.startupView()
	}

	m.canUndo = m.hist.canUndo
	m.canRedo = m.hist.canRedo

	var out strings.Builder
	out.WriteString(m.renderCanvas())
	out.WriteString("\n")
	out.WriteString(m.statusLine())
	return out.String()
}

func (m model) startupView() string {
	lines := []string{
		"",
		"  gridplan, a diamond grid map planner",
		"",
		"  'n' New board",
		"  'o' Open saved board",
		"  'q' Quit",
	}
	return strings.Join(lines, "\n")
}

func parseCustomSize(s string) (int, int, bool) {
	xi := strings.IndexAny(s, "xX*")
	if xi <= 0 || xi == len(s)-1 {
		return 0, 0, false
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(s[:xi]))
	h, err2 := strconv.Atoi(strings.TrimSpace(s[xi+1:]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return clampInt(w, minObjectCells, maxObjectCells), clampInt(h, minObjectCells, maxObjectCells), true
}
