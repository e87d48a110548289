package main

func (m *model) handleNavigation(key string, speed int) {
	if m.zPanMode {
		m.handlePan(key, speed)
		return
	}
	m.handleCursorMove(key, speed)
}

func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= speed
	case "l", "right", "L", "shift+right":
		m.panX += speed
	case "k", "up", "K", "shift+up":
		m.panY -= speed
	case "j", "down", "J", "shift+down":
		m.panY += speed
	}
	m.clampPan()
	m.updateViewTransform()
}

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursor.X -= speed
	case "l", "right", "L", "shift+right":
		m.cursor.X += speed
	case "k", "up", "K", "shift+up":
		m.cursor.Y -= speed
	case "j", "down", "J", "shift+down":
		m.cursor.Y += speed
	}
	m.ensureCursorInBounds()
	m.scrollCursorIntoView()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	g := m.board.grid
	m.cursor.X = clampInt(m.cursor.X, 0, g.Cols-1)
	m.cursor.Y = clampInt(m.cursor.Y, 0, g.Rows-1)
}

func (m *model) clampPan() {
	g := m.board.grid
	cols, rows := m.viewportCells()
	m.panX = clampInt(m.panX, 0, maxInt(0, g.Cols-cols))
	m.panY = clampInt(m.panY, 0, maxInt(0, g.Rows-rows))
}

// scrollCursorIntoView pans just enough to keep the cursor visible.
func (m *model) scrollCursorIntoView() {
	cols, rows := m.viewportCells()
	if m.cursor.X < m.panX {
		m.panX = m.cursor.X
	}
	if m.cursor.X >= m.panX+cols {
		m.panX = m.cursor.X - cols + 1
	}
	if m.cursor.Y < m.panY {
		m.panY = m.cursor.Y
	}
	if m.cursor.Y >= m.panY+rows {
		m.panY = m.cursor.Y - rows + 1
	}
	m.clampPan()
	m.updateViewTransform()
}

// centerOn pans so the given cell sits mid-viewport (coordinate jump).
func (m *model) centerOn(c Cell) {
	cols, rows := m.viewportCells()
	m.cursor = c
	m.ensureCursorInBounds()
	m.panX = m.cursor.X - cols/2
	m.panY = m.cursor.Y - rows/2
	m.clampPan()
	m.updateViewTransform()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
