package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleEmpty     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	styleTerritory = lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("28"))
	styleUserPaint = lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("31"))
	styleObject    = lipgloss.NewStyle().Background(lipgloss.Color("250")).Foreground(lipgloss.Color("16"))
	styleSelected  = lipgloss.NewStyle().Background(lipgloss.Color("178")).Foreground(lipgloss.Color("16"))
	styleInvalid   = lipgloss.NewStyle().Background(lipgloss.Color("88")).Foreground(lipgloss.Color("15"))
	styleImmutable = lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15"))
	styleCursor    = lipgloss.NewStyle().Reverse(true)

	styleStatus  = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	styleMessage = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderCanvas draws the visible cell window. One terminal row per cell
// row, cellW characters per cell column.
func (m *model) renderCanvas() string {
	cols, rows := m.viewportCells()
	b := m.board
	g := b.grid

	var out strings.Builder
	for vy := 0; vy < rows; vy++ {
		for vx := 0; vx < cols; vx++ {
			c := Cell{X: m.panX + vx, Y: m.panY + vy}
			out.WriteString(m.renderCell(c, g))
		}
		out.WriteString("\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

func (m *model) renderCell(c Cell, g *Grid) string {
	if !g.contains(c) {
		return strings.Repeat(" ", m.cellW)
	}

	b := m.board
	content := "·" + strings.Repeat(" ", m.cellW-1)
	style := styleEmpty

	_, territory := b.painted[c]
	if territory {
		style = styleTerritory
	}
	if b.userPaint[c] {
		style = styleUserPaint
		content = strings.Repeat("▒", m.cellW)
	}

	if o := b.ObjectAt(c); o != nil {
		letter := byte('#')
		if code, ok := kindCodes[o.Kind]; ok {
			letter = code
		}
		content = string(letter) + strings.Repeat(" ", m.cellW-1)
		switch {
		case o == m.selected && (m.mode == ModeMove || m.mode == ModeResize):
			style = styleSelected
		case o.Invalid:
			style = styleInvalid
		case o.Immutable:
			style = styleImmutable
		default:
			style = styleObject
		}
	}

	if c == m.cursor && m.mode != ModeStartup {
		style = styleCursor
	}
	return style.Render(content)
}

func (m *model) statusLine() string {
	var left string
	switch m.mode {
	case ModeLabelInput:
		left = "LABEL: " + m.inputText + "█"
	case ModeCustomSize:
		left = "SIZE (WxH): " + m.inputText + "█"
	case ModeJump:
		left = "JUMP TO (x:y): " + m.inputText + "█"
	case ModeFileInput:
		left = "FILENAME: " + m.inputText + "█"
	case ModeConfirm:
		left = m.confirmPrompt() + " (y/n)"
	default:
		left = m.modeString() + "  " + formatCell(m.cursor)
		if o := m.board.ObjectAt(m.cursor); o != nil {
			left += "  [" + o.Label + "]"
		}
	}

	undo := "↺"
	if !m.canUndo {
		undo = styleDim.Render("↺")
	}
	redo := "↻"
	if !m.canRedo {
		redo = styleDim.Render("↻")
	}

	var msg string
	if m.errorMessage != "" {
		msg = styleError.Render(m.errorMessage)
	} else if m.successMessage != "" {
		msg = styleMessage.Render(m.successMessage)
	}

	line := left + "  " + undo + " " + redo
	if msg != "" {
		line += "  " + msg
	}
	return styleStatus.Width(maxInt(m.width, 0)).Render(line)
}

func (m *model) modeString() string {
	switch m.mode {
	case ModeStartup:
		return "STARTUP"
	case ModeNormal:
		if m.zPanMode {
			return "PAN"
		}
		return "NORMAL"
	case ModePaint:
		return "PAINT"
	case ModeMove:
		return "MOVE"
	case ModeResize:
		return "RESIZE"
	case ModeLabelInput:
		return "LABEL"
	case ModeCustomSize:
		return "SIZE"
	case ModeJump:
		return "JUMP"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m *model) confirmPrompt() string {
	switch m.confirmAction {
	case ConfirmReset:
		return "Clear the whole board?"
	case ConfirmDeleteObject:
		return "Delete this object?"
	case ConfirmQuit:
		return "Quit?"
	default:
		return "Are you sure?"
	}
}

func (m *model) helpView() string {
	helpLines := []string{
		"gridplan help",
		"=============",
		"",
		"Navigation:",
		"  h/←/j/↓/k/↑/l/→  Move cursor (Shift moves 2x)",
		"  z                Toggle pan mode (then hjkl pans the viewport)",
		"  g                Jump to a coordinate (display x:y)",
		"  +/-              Zoom the view in/out",
		"",
		"Placement:",
		"  1..5             Place flag / HQ / city / resource / trap",
		"  6                Place custom block (prompts for WxH)",
		"  m                Move object under cursor (enter commits, esc cancels)",
		"  s                Resize object under cursor",
		"  e                Edit label of object under cursor",
		"  d                Delete object under cursor",
		"",
		"Territory:",
		"  space            Toggle user paint on the cursor cell",
		"  p                Paint mode: cursor movement paints",
		"",
		"History & sharing:",
		"  u                Undo",
		"  ctrl+r           Redo",
		"  y                Copy share URL to clipboard",
		"  w                Save board to file",
		"  o                Open board from file",
		"  x                Export PNG",
		"  N                Reset board",
		"",
		"  ?                Close help    q  Quit",
	}
	return strings.Join(helpLines, "\n")
}
