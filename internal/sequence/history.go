package sequence

// History holds undo/redo stacks of sequence snapshots. The past is a
// plain LIFO stack; the future is pushed and popped at the front, so redo
// replays the branch in the order the undos peeled it off. Any recorded
// edit discards the future branch entirely: history is linear.
type History struct {
	past   []Snapshot
	future []Snapshot
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Record pushes the pre-edit state onto the past and clears the future.
// Call it exactly once per user edit gesture, before mutating.
func (h *History) Record(pre Snapshot) {
	h.past = append(h.past, pre)
	h.future = nil
}

// Undo exchanges the current state for the most recent past entry. The
// second return is false when there is nothing to restore.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.past) == 0 {
		return Snapshot{}, false
	}
	restored := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]Snapshot{current}, h.future...)
	return restored, true
}

// Redo exchanges the current state for the entry pushed by the most
// recent undo. The second return is false when there is nothing to replay.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.future) == 0 {
		return Snapshot{}, false
	}
	restored := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, current)
	return restored, true
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.past, h.future = nil, nil
}
