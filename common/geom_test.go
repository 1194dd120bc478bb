package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 100, Y: 100, Width: 50, Height: 50}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 120, Y: 120, Width: 50, Height: 50}, true},
		{"contained", Rect{X: 110, Y: 110, Width: 10, Height: 10}, true},
		{"disjoint", Rect{X: 300, Y: 300, Width: 20, Height: 20}, false},
		// touching edges must not count as intersection
		{"touching_right_edge", Rect{X: 150, Y: 100, Width: 50, Height: 50}, false},
		{"touching_left_edge", Rect{X: 50, Y: 100, Width: 50, Height: 50}, false},
		{"touching_bottom_edge", Rect{X: 100, Y: 150, Width: 50, Height: 50}, false},
		{"touching_top_edge", Rect{X: 100, Y: 50, Width: 50, Height: 50}, false},
		{"touching_corner", Rect{X: 150, Y: 150, Width: 50, Height: 50}, false},
		{"one_px_overlap", Rect{X: 149, Y: 100, Width: 50, Height: 50}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			// intersection is symmetric
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("reverse Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
		})
	}
}

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Left() != 10 || r.Right() != 40 || r.Top() != 20 || r.Bottom() != 60 {
		t.Fatalf("accessors wrong: left=%v right=%v top=%v bottom=%v", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Fatalf("center wrong: (%v, %v)", r.CenterX(), r.CenterY())
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	rect := Rect{X: 100, Y: 100, Width: 60, Height: 60}

	cases := []struct {
		name   string
		circle Circle
		want   bool
	}{
		{"center_inside", Circle{X: 130, Y: 130, Radius: 5}, true},
		{"overlapping_edge", Circle{X: 95, Y: 130, Radius: 10}, true},
		// closest-point distance exactly equal to the radius counts
		{"touching_edge", Circle{X: 90, Y: 130, Radius: 10}, true},
		{"outside", Circle{X: 80, Y: 130, Radius: 10}, false},
		{"near_corner_inside_radius", Circle{X: 94, Y: 94, Radius: 10}, true},
		{"near_corner_outside_radius", Circle{X: 90, Y: 90, Radius: 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.circle.IntersectsRect(rect); got != c.want {
				t.Fatalf("IntersectsRect(%+v) = %v, want %v", c.circle, got, c.want)
			}
		})
	}
}
