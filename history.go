package pixelcanvas

import "log/slog"

// History is a linear undo/redo log of grid snapshots.
//
// entries[cursor] is the currently materialized state; entries after the
// cursor are redoable until the next Save prunes them. There is no redo
// tree. All operations are total: boundary conditions are no-ops.
type History struct {
	entries []Snapshot
	cursor  int // -1 when empty
	limit   int // 0 means unbounded
}

// NewHistory creates an empty history. A positive limit caps the number of
// retained snapshots, evicting the oldest first.
func NewHistory(limit int) *History {
	return &History{cursor: -1, limit: max(limit, 0)}
}

// Len returns the number of retained snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the materialized snapshot, or -1 when empty.
func (h *History) Cursor() int {
	return h.cursor
}

// Limit returns the capacity cap, 0 when unbounded.
func (h *History) Limit() int {
	return h.limit
}

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would move the cursor.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Save records the current state of g, discarding any redoable future.
// Called once per discrete user action, before the action mutates g.
//
// A grid identical to the materialized snapshot is not recorded twice; the
// future is still pruned.
func (h *History) Save(g *Grid) {
	if h.cursor >= 0 && g.matches(h.entries[h.cursor]) {
		h.truncate()
		return
	}
	h.push(g.Snapshot())
}

// Undo restores the previous snapshot into g and reports whether g changed.
//
// Edits made since the materialized snapshot are checkpointed first, so a
// following Redo returns to them.
func (h *History) Undo(g *Grid) bool {
	if h.cursor <= 0 {
		return false
	}
	h.Commit(g)
	h.cursor--
	g.Restore(h.entries[h.cursor])
	Logger().Debug("history undo", slog.Int("cursor", h.cursor), slog.Int("len", len(h.entries)))
	return true
}

// Redo restores the next snapshot into g and reports whether g changed.
// Uncommitted edits start a new branch, which leaves nothing to redo.
func (h *History) Redo(g *Grid) bool {
	if h.cursor < 0 {
		return false
	}
	h.Commit(g)
	if !h.CanRedo() {
		return false
	}
	h.cursor++
	g.Restore(h.entries[h.cursor])
	Logger().Debug("history redo", slog.Int("cursor", h.cursor), slog.Int("len", len(h.entries)))
	return true
}

// Commit records g if it diverged from the materialized snapshot, pruning
// the redoable future, and reports whether a snapshot was added. Hosts call
// it before Undo so that edits made after the oldest entry stay undoable.
func (h *History) Commit(g *Grid) bool {
	if h.cursor < 0 || g.matches(h.entries[h.cursor]) {
		return false
	}
	h.push(g.Snapshot())
	return true
}

func (h *History) truncate() {
	clear(h.entries[h.cursor+1:])
	h.entries = h.entries[:h.cursor+1]
}

func (h *History) push(s Snapshot) {
	h.cursor++
	h.entries = append(h.entries[:h.cursor], s)
	clear(h.entries[len(h.entries):cap(h.entries)])

	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append(h.entries[:0], h.entries[drop:]...)
		clear(h.entries[len(h.entries):cap(h.entries)])
		h.cursor -= drop
		Logger().Debug("history evict", slog.Int("dropped", drop), slog.Int("limit", h.limit))
	}
	Logger().Debug("history save", slog.Int("cursor", h.cursor), slog.Int("len", len(h.entries)))
}
