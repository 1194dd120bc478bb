package obj

import (
	"math/rand"

	"github.com/milk9111/gravitydash/segments"
)

// Segment is a live placement of a template on the endless track: the
// template, the world x of its left edge, and freshly built entity instances.
type Segment struct {
	Template *segments.Template
	Offset   float64
	Entities []Entity
}

func NewSegment(t *segments.Template, offset float64, rng *rand.Rand) *Segment {
	s := &Segment{}
	s.Recycle(t, offset, rng)
	return s
}

// End is the world x of the segment's right edge.
func (s *Segment) End() float64 {
	return s.Offset + s.Template.Width
}

// Recycle repositions the segment under a (possibly different) template and
// rebuilds its entity list. Old entity state is discarded entirely.
func (s *Segment) Recycle(t *segments.Template, offset float64, rng *rand.Rand) {
	s.Template = t
	s.Offset = offset
	s.Entities = buildEntities(t, rng)
}
