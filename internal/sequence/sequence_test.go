package sequence

import (
	"testing"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/schema"
)

func poseWithTorso(deg float64) pose.Pose {
	var p pose.Pose
	p.Angles[schema.Torso] = deg
	return p
}

func TestAdd_DuplicatesCurrentAndMovesCursor(t *testing.T) {
	s := New(poseWithTorso(10), 10)
	if !s.Add() {
		t.Fatal("Add rejected with room to spare")
	}
	if s.Len() != 2 || s.Index() != 1 {
		t.Fatalf("len=%d index=%d", s.Len(), s.Index())
	}
	if s.Current() != poseWithTorso(10) {
		t.Errorf("new frame is not a duplicate: %+v", s.Current())
	}
}

func TestAdd_RejectedAtCapacity(t *testing.T) {
	s := New(pose.Default(), 10)
	for i := 0; i < 9; i++ {
		if !s.Add() {
			t.Fatalf("Add %d rejected below capacity", i+1)
		}
	}
	if s.Len() != 10 {
		t.Fatalf("len = %d, want 10", s.Len())
	}
	if s.Add() {
		t.Error("Add accepted at capacity")
	}
	if s.Len() != 10 {
		t.Errorf("no-op Add changed length to %d", s.Len())
	}
}

func TestInsertBetween_BlendsWithSuccessor(t *testing.T) {
	s := New(poseWithTorso(0), 10)
	s.Add()
	s.ReplaceCurrent(poseWithTorso(40))
	s.Select(0)

	if !s.InsertBetween() {
		t.Fatal("InsertBetween rejected")
	}
	if s.Len() != 3 || s.Index() != 1 {
		t.Fatalf("len=%d index=%d", s.Len(), s.Index())
	}
	if got := s.Current().Angles[schema.Torso]; got != 20 {
		t.Errorf("inserted torso = %v, want 20", got)
	}
	if got := s.Frame(2).Angles[schema.Torso]; got != 40 {
		t.Errorf("successor shifted wrong: %v", got)
	}
}

func TestInsertBetween_WrapsFromLastFrame(t *testing.T) {
	s := New(poseWithTorso(0), 10)
	s.Add()
	s.ReplaceCurrent(poseWithTorso(30)) // cursor on last frame

	if !s.InsertBetween() {
		t.Fatal("InsertBetween rejected")
	}
	// Successor of the last frame is frame 0: blend of 30 and 0.
	if got := s.Current().Angles[schema.Torso]; got != 15 {
		t.Errorf("inserted torso = %v, want 15", got)
	}
	if s.Index() != 2 || s.Len() != 3 {
		t.Errorf("len=%d index=%d", s.Len(), s.Index())
	}
}

func TestDelete_SingleFrameRejected(t *testing.T) {
	s := New(pose.Default(), 10)
	if s.Delete() {
		t.Error("Delete accepted on a single-frame sequence")
	}
	if s.Len() != 1 {
		t.Errorf("len = %d", s.Len())
	}
}

func TestDelete_LastFrameMovesCursorBack(t *testing.T) {
	s := New(poseWithTorso(0), 10)
	s.Add()
	s.ReplaceCurrent(poseWithTorso(1))
	s.Add()
	s.ReplaceCurrent(poseWithTorso(2)) // frames 0,1,2 with cursor on 2

	if !s.Delete() {
		t.Fatal("Delete rejected")
	}
	if s.Len() != 2 || s.Index() != 1 {
		t.Fatalf("len=%d index=%d", s.Len(), s.Index())
	}
	if s.Current() != poseWithTorso(1) {
		t.Errorf("cursor on %+v", s.Current())
	}
}

func TestDelete_MiddleFrameKeepsCursor(t *testing.T) {
	s := New(poseWithTorso(0), 10)
	s.Add()
	s.ReplaceCurrent(poseWithTorso(1))
	s.Add()
	s.ReplaceCurrent(poseWithTorso(2))
	s.Select(1)

	if !s.Delete() {
		t.Fatal("Delete rejected")
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
	// Frame 2 shifted into place.
	if s.Current() != poseWithTorso(2) {
		t.Errorf("cursor on %+v", s.Current())
	}
}

func TestSelect_RejectsOutOfRange(t *testing.T) {
	s := New(pose.Default(), 10)
	s.Add()
	if s.Select(-1) || s.Select(2) {
		t.Error("Select accepted out-of-range index")
	}
	if !s.Select(0) {
		t.Error("Select rejected valid index")
	}
}

func TestSnapshotRestore_DeepCopies(t *testing.T) {
	s := New(poseWithTorso(5), 10)
	snap := s.Snapshot()
	s.ReplaceCurrent(poseWithTorso(99))
	s.Add()

	s.Restore(snap)
	if s.Len() != 1 || s.Current() != poseWithTorso(5) {
		t.Errorf("restore failed: len=%d current=%+v", s.Len(), s.Current())
	}
}
