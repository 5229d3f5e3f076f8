package sequence

import "github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"

// DefaultThreshold is the deviation above which a live edit commits a new
// frame. Root displacement (pixels) and joint deltas (degrees) feed the
// same scalar — see pose.Deviation.
const DefaultThreshold = 22.5

// AutoRecorder commits a new frame whenever a live pose edit strays far
// enough from the previous frame. It is a hysteresis gate, not a sampler:
// frames appear when motion is large, regardless of wall-clock time.
type AutoRecorder struct {
	Threshold float64
	initial   pose.Pose // reference while the sequence has a single frame
}

// NewAutoRecorder creates a recorder using initial as the reference pose
// until a second frame exists.
func NewAutoRecorder(initial pose.Pose, threshold float64) *AutoRecorder {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &AutoRecorder{Threshold: threshold, initial: initial}
}

// Observe feeds one live edit through the recorder. The candidate always
// lands in the current frame; when its deviation from the reference frame
// exceeds the threshold and the sequence has room, the pre-edit state is
// snapshotted into hist, the candidate is committed, and a duplicate is
// appended as the new working frame with the cursor on it. Returns true
// when a frame was committed.
func (a *AutoRecorder) Observe(seq *Sequence, hist *History, candidate pose.Pose) bool {
	if seq.Full() {
		seq.ReplaceCurrent(candidate)
		return false
	}

	ref := a.initial
	if seq.Len() > 1 && seq.Index() > 0 {
		ref = seq.Frame(seq.Index() - 1)
	}

	if pose.Deviation(candidate, ref) <= a.Threshold {
		seq.ReplaceCurrent(candidate)
		return false
	}

	hist.Record(seq.Snapshot())
	seq.ReplaceCurrent(candidate)
	seq.Add()
	return true
}
