package sequence

import (
	"testing"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"
)

// edit mimics one undoable user edit: snapshot first, then mutate.
func edit(s *Sequence, h *History, torso float64) {
	h.Record(s.Snapshot())
	s.ReplaceCurrent(poseWithTorso(torso))
}

func TestHistory_UndoRedoThreeEdits(t *testing.T) {
	s := New(poseWithTorso(0), 10)
	h := &History{}

	edit(s, h, 1)
	edit(s, h, 2)
	edit(s, h, 3)

	for i := 3; i >= 1; i-- {
		snap, ok := h.Undo(s.Snapshot())
		if !ok {
			t.Fatalf("undo %d rejected", 4-i)
		}
		s.Restore(snap)
		if got := s.Current().Angles[0]; got != float64(i-1) {
			t.Fatalf("after undo: torso = %v, want %v", got, i-1)
		}
	}
	if _, ok := h.Undo(s.Snapshot()); ok {
		t.Error("4th undo should be a no-op")
	}
	if h.CanUndo() {
		t.Error("CanUndo at the bottom")
	}

	for i := 1; i <= 3; i++ {
		snap, ok := h.Redo(s.Snapshot())
		if !ok {
			t.Fatalf("redo %d rejected", i)
		}
		s.Restore(snap)
		if got := s.Current().Angles[0]; got != float64(i) {
			t.Fatalf("after redo: torso = %v, want %v", got, i)
		}
	}
	if _, ok := h.Redo(s.Snapshot()); ok {
		t.Error("redo past the top should be a no-op")
	}
}

func TestHistory_NewEditClearsFuture(t *testing.T) {
	s := New(poseWithTorso(0), 10)
	h := &History{}

	edit(s, h, 1)
	snap, _ := h.Undo(s.Snapshot())
	s.Restore(snap)
	if !h.CanRedo() {
		t.Fatal("future empty after undo")
	}

	edit(s, h, 7) // branches: the old future is gone
	if h.CanRedo() {
		t.Error("future survived a fresh edit")
	}
}

func TestHistory_EmptyStacks(t *testing.T) {
	h := &History{}
	if _, ok := h.Undo(Snapshot{Frames: []pose.Pose{{}}}); ok {
		t.Error("undo on empty past")
	}
	if _, ok := h.Redo(Snapshot{Frames: []pose.Pose{{}}}); ok {
		t.Error("redo on empty future")
	}
}
