package engine

// HistoryLimit bounds the undo stack. When full, the oldest snapshot is
// discarded first.
const HistoryLimit = 50

// frame is one undo entry: the board layout and move counter as they were
// before a move. Elapsed time is deliberately not captured; the clock is
// never rolled back.
type frame struct {
	board Board
	moves int
}

// history is a bounded stack of pre-move snapshots, most recent last.
type history struct {
	frames []frame
	limit  int
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

// push records a deep-copied snapshot, evicting the oldest when full.
func (h *history) push(b *Board, moves int) {
	if len(h.frames) >= h.limit {
		copy(h.frames, h.frames[1:])
		h.frames = h.frames[:len(h.frames)-1]
	}
	h.frames = append(h.frames, frame{board: b.Clone(), moves: moves})
}

// pop removes and returns the most recent snapshot.
func (h *history) pop() (frame, bool) {
	if len(h.frames) == 0 {
		return frame{}, false
	}
	f := h.frames[len(h.frames)-1]
	h.frames = h.frames[:len(h.frames)-1]
	return f, true
}

func (h *history) len() int {
	return len(h.frames)
}

func (h *history) clear() {
	h.frames = h.frames[:0]
}
