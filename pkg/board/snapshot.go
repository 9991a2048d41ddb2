package board

// Snapshot is a saved copy of a board's grid and piece counters.
type Snapshot struct {
	cells []Side
	count [SideN]int
}

// Snapshot saves the current state of the board so that it can later be
// brought back with Restore.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		cells: make([]Side, 0, b.size*b.size),
		count: b.count,
	}

	for _, line := range b.grid {
		snap.cells = append(snap.cells, line...)
	}

	return snap
}

// Restore brings the board back to the state saved in the snapshot. The
// snapshot must have been taken from a board of the same size.
func (b *Board) Restore(snap Snapshot) {
	for line := range b.grid {
		copy(b.grid[line], snap.cells[line*b.size:(line+1)*b.size])
	}

	b.count = snap.count
}
