// Package playback advances an animation sequence from a host-driven tick.
// The scheduler is an explicit state struct with a single Tick(now) entry
// point: the host calls it once per display frame from whatever event loop
// it owns, so there is never more than one logical playback loop and
// pausing takes effect on the very next tick.
package playback

import (
	"time"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/sequence"
)

// DefaultFPS is the stock playback rate.
const DefaultFPS = 6.0

// Scheduler drives stepped or tweened playback over a sequence.
type Scheduler struct {
	playing  bool
	tweening bool
	fps      float64

	last  time.Time     // previous tick, for delta computation
	acc   time.Duration // stepped-mode accumulator toward one frame duration
	total time.Duration // tweened-mode global clock
}

// New returns a paused scheduler at DefaultFPS.
func New() *Scheduler {
	return &Scheduler{fps: DefaultFPS}
}

func (s *Scheduler) Playing() bool  { return s.playing }
func (s *Scheduler) Tweening() bool { return s.tweening }
func (s *Scheduler) FPS() float64   { return s.fps }

// SetFPS changes the playback rate. Non-positive rates are ignored.
func (s *Scheduler) SetFPS(fps float64) {
	if fps > 0 {
		s.fps = fps
	}
}

// SetTweening switches between discrete keyframe stepping and continuous
// interpolation. Takes effect on the next tick.
func (s *Scheduler) SetTweening(on bool) {
	s.tweening = on
}

// frameDuration is 1/fps.
func (s *Scheduler) frameDuration() time.Duration {
	return time.Duration(float64(time.Second) / s.fps)
}

// Play starts (or restarts) playback at now. The global clock is seeded
// from the sequence's cursor so resuming continues from the selected
// frame instead of rewinding to frame 0.
func (s *Scheduler) Play(now time.Time, seq *sequence.Sequence) {
	s.playing = true
	s.last = now
	s.acc = 0
	s.total = time.Duration(seq.Index()) * s.frameDuration()
}

// Pause stops playback and discards any interpolated state; the display
// reverts to the literal current frame.
func (s *Scheduler) Pause() {
	s.playing = false
	s.acc = 0
}

// Tick advances playback by the wall time elapsed since the previous tick
// and returns the pose to display. While paused it returns the current
// frame unchanged.
//
// Stepped mode accumulates elapsed time and advances the cursor by one
// (wrapping) each time a full frame duration has passed. Tweened mode
// folds elapsed time into a global clock, derives the fractional frame
// position and returns the blend of the two surrounding frames, keeping
// the cursor in sync with the integer part for UI feedback.
func (s *Scheduler) Tick(now time.Time, seq *sequence.Sequence) pose.Pose {
	if !s.playing {
		return seq.Current()
	}

	dt := now.Sub(s.last)
	s.last = now
	if dt < 0 {
		dt = 0
	}
	frameDur := s.frameDuration()

	if !s.tweening {
		s.acc += dt
		if s.acc >= frameDur {
			seq.Select((seq.Index() + 1) % seq.Len())
			s.acc = 0
			s.total = time.Duration(seq.Index()) * frameDur
		}
		return seq.Current()
	}

	s.total += dt
	cycle := frameDur * time.Duration(seq.Len())
	global := s.total % cycle
	exact := float64(global) / float64(frameDur)
	idx := int(exact)
	t := exact - float64(idx)
	if idx >= seq.Len() {
		idx = seq.Len() - 1 // guards the global==cycle boundary
	}
	seq.Select(idx)
	return pose.Interpolate(seq.Frame(idx), seq.Frame((idx+1)%seq.Len()), t)
}
