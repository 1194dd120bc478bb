package obj

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/gravitydash/segments"
)

func testLibrary() *segments.Library {
	return segments.NewLibrary(
		&segments.Template{Name: "a", Width: 800},
		&segments.Template{Name: "b", Width: 960},
		&segments.Template{Name: "c", Width: 1120},
	)
}

func checkWindow(t *testing.T, l *Level) {
	t.Helper()
	segs := l.Segments()
	if len(segs) != ActiveSegments {
		t.Fatalf("active segment count = %d, want %d", len(segs), ActiveSegments)
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].Offset != segs[i-1].End() {
			t.Fatalf("segment %d offset = %v, want %v (end of segment %d)", i, segs[i].Offset, segs[i-1].End(), i-1)
		}
	}
}

func TestLevelResetBuildsContiguousWindow(t *testing.T) {
	l := NewLevel(testLibrary(), rand.New(rand.NewSource(7)))
	checkWindow(t, l)
	if l.Segments()[0].Offset != l.ScrollX() {
		t.Fatalf("first segment offset = %v, want scroll %v", l.Segments()[0].Offset, l.ScrollX())
	}
}

func TestLevelAdvanceKeepsWindowInvariant(t *testing.T) {
	l := NewLevel(testLibrary(), rand.New(rand.NewSource(7)))

	const dt = 1.0 / 60.0
	for i := 0; i < 3600; i++ {
		l.Advance(dt, 1)
		checkWindow(t, l)

		// a segment is only recycled once it's fully behind the margin
		if l.Segments()[0].End() < l.ScrollX()-l.RecycleMargin() {
			t.Fatalf("front segment end %v still behind recycle threshold %v", l.Segments()[0].End(), l.ScrollX()-l.RecycleMargin())
		}
	}

	if l.ScrollX() <= 0 {
		t.Fatal("scroll did not advance")
	}
}

func TestLevelRecycleAppendsAtBack(t *testing.T) {
	l := NewLevel(testLibrary(), rand.New(rand.NewSource(3)))
	front := l.Segments()[0]
	threshold := front.End() + l.RecycleMargin()

	const dt = 1.0 / 60.0
	for l.ScrollX() <= threshold {
		l.Advance(dt, 1)
	}

	segs := l.Segments()
	if segs[len(segs)-1] != front {
		t.Fatal("recycled segment did not move to the back of the window")
	}
	checkWindow(t, l)
}

func TestLevelSeededReproducibility(t *testing.T) {
	run := func(seed int64) []string {
		l := NewLevel(testLibrary(), rand.New(rand.NewSource(seed)))
		names := make([]string, 0, 64)
		for _, s := range l.Segments() {
			names = append(names, s.Template.Name)
		}
		for i := 0; i < 7200; i++ {
			before := l.Segments()[len(l.Segments())-1]
			l.Advance(1.0/60.0, 1)
			after := l.Segments()[len(l.Segments())-1]
			if before != after {
				names = append(names, after.Template.Name)
			}
		}
		return names
	}

	a, b := run(42), run(42)
	if len(a) != len(b) {
		t.Fatalf("sequence lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequence diverges at %d: %q vs %q", i, a[i], b[i])
		}
	}
	if len(a) <= ActiveSegments {
		t.Fatal("run too short to have recycled anything")
	}
}

func TestLevelSpeedSmoothing(t *testing.T) {
	l := NewLevel(testLibrary(), rand.New(rand.NewSource(1)))
	base := l.Speed()

	const dt = 1.0 / 60.0
	target := base * 1.5
	prev := l.Speed()
	for i := 0; i < 30; i++ {
		l.Advance(dt, 1.5)
		cur := l.Speed()
		if cur < prev {
			t.Fatalf("speed not monotonic toward target: %v -> %v", prev, cur)
		}
		if cur > target+1e-9 {
			t.Fatalf("speed overshot target: %v > %v", cur, target)
		}
		prev = cur
	}

	// a half second of smoothing should be most of the way there
	if l.Speed() < base+0.9*(target-base) {
		t.Fatalf("speed %v converged too slowly toward %v", l.Speed(), target)
	}

	// dropping the multiplier eases the speed back down
	for i := 0; i < 120; i++ {
		l.Advance(dt, 1)
	}
	if math.Abs(l.Speed()-base) > 1 {
		t.Fatalf("speed %v did not return near base %v", l.Speed(), base)
	}
}

func TestLevelResetDoesNotRewindScroll(t *testing.T) {
	l := NewLevel(testLibrary(), rand.New(rand.NewSource(9)))
	for i := 0; i < 600; i++ {
		l.Advance(1.0/60.0, 1)
	}
	scroll := l.ScrollX()

	l.Reset()

	if l.ScrollX() != scroll {
		t.Fatalf("reset changed scroll: %v -> %v", scroll, l.ScrollX())
	}
	checkWindow(t, l)
	if l.Segments()[0].Offset != scroll {
		t.Fatalf("rebuilt window starts at %v, want %v", l.Segments()[0].Offset, scroll)
	}
}

func TestLevelPlayerXPinned(t *testing.T) {
	l := NewLevel(testLibrary(), rand.New(rand.NewSource(2)))
	for i := 0; i < 90; i++ {
		l.Advance(1.0/60.0, 1)
		if got := l.PlayerX(); got != l.ScrollX()+PlayerScreenX {
			t.Fatalf("player x = %v, want scroll %v + %v", got, l.ScrollX(), PlayerScreenX)
		}
	}
}

func TestLevelSetViewport(t *testing.T) {
	l := NewLevel(testLibrary(), rand.New(rand.NewSource(2)))

	l.SetViewport(1600)
	if l.ViewWidth() != 1600 || l.RecycleMargin() != 400 {
		t.Fatalf("viewport = %v margin = %v", l.ViewWidth(), l.RecycleMargin())
	}

	// nonsense sizes are ignored
	l.SetViewport(0)
	if l.ViewWidth() != 1600 {
		t.Fatalf("zero width mutated viewport to %v", l.ViewWidth())
	}
}
