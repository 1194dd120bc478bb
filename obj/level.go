package obj

import (
	"math"
	"math/rand"

	"github.com/milk9111/gravitydash/common"
	"github.com/milk9111/gravitydash/segments"
)

const (
	// ActiveSegments is the fixed size of the streaming window.
	ActiveSegments = 4

	// PlayerScreenX is where the player sits in the viewport, in world units
	// from the scroll position.
	PlayerScreenX = 280.0

	baseScrollSpeed = 340.0
	// speedSmoothing is the exponential smoothing rate toward the target
	// scroll speed; high enough that boosts ramp without a visible pop.
	speedSmoothing = 6.0
)

// Level owns the scroll state and the sliding window of active segments.
// Template selection goes through the injected random source so a run seed
// reproduces the same track.
type Level struct {
	lib *segments.Library
	rng *rand.Rand

	segs         []*Segment
	scrollX      float64
	currentSpeed float64
	baseSpeed    float64

	viewWidth     float64
	recycleMargin float64
}

func NewLevel(lib *segments.Library, rng *rand.Rand) *Level {
	l := &Level{
		lib:       lib,
		rng:       rng,
		baseSpeed: baseScrollSpeed,
	}
	l.SetViewport(common.BaseWidth)
	l.Reset()
	return l
}

// Reset rebuilds the whole window starting at the current scroll position,
// with each segment immediately following the previous one. Scroll itself is
// never rewound; distance within an attempt is measured from its start.
func (l *Level) Reset() {
	l.currentSpeed = l.baseSpeed
	l.segs = l.segs[:0]
	offset := l.scrollX
	for i := 0; i < ActiveSegments; i++ {
		s := NewSegment(l.lib.Pick(l.rng), offset, l.rng)
		l.segs = append(l.segs, s)
		offset = s.End()
	}
}

// Advance smooths the scroll speed toward the boost-adjusted target, moves
// the scroll position and recycles any segment that fell behind the window.
func (l *Level) Advance(dt, speedMultiplier float64) {
	target := l.baseSpeed * speedMultiplier
	l.currentSpeed += (target - l.currentSpeed) * (1 - math.Exp(-dt*speedSmoothing))
	l.scrollX += l.currentSpeed * dt

	// Ring-buffer recycle: the popped segment always moves to the logical
	// end of the sequence under a freshly picked template, keeping coverage
	// contiguous.
	for l.segs[0].End() < l.scrollX-l.recycleMargin {
		front := l.segs[0]
		back := l.segs[len(l.segs)-1]
		copy(l.segs, l.segs[1:])
		front.Recycle(l.lib.Pick(l.rng), back.End(), l.rng)
		l.segs[len(l.segs)-1] = front
	}
}

// SetViewport updates the visible width in world units. It only affects the
// recycle margin heuristic and rendering, never simulation units.
func (l *Level) SetViewport(width float64) {
	if width <= 0 {
		return
	}
	l.viewWidth = width
	l.recycleMargin = width / 4
}

func (l *Level) ScrollX() float64       { return l.scrollX }
func (l *Level) Speed() float64         { return l.currentSpeed }
func (l *Level) ViewWidth() float64     { return l.viewWidth }
func (l *Level) RecycleMargin() float64 { return l.recycleMargin }
func (l *Level) Segments() []*Segment   { return l.segs }

// PlayerX is the world x the player is pinned to this frame.
func (l *Level) PlayerX() float64 {
	return l.scrollX + PlayerScreenX
}
