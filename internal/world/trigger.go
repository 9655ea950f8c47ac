package world

import "math"

// PolygonTrigger is a named closed polygon on the map.
type PolygonTrigger struct {
	name   string
	points []Coord
	min    Coord
	max    Coord
}

func NewPolygonTrigger(name string, points []Coord) *PolygonTrigger {
	t := &PolygonTrigger{name: name, points: append([]Coord(nil), points...)}
	if len(points) > 0 {
		t.min, t.max = points[0], points[0]
	}
	for _, p := range points[1:] {
		t.min.X = math.Min(t.min.X, p.X)
		t.min.Y = math.Min(t.min.Y, p.Y)
		t.max.X = math.Max(t.max.X, p.X)
		t.max.Y = math.Max(t.max.Y, p.Y)
	}
	return t
}

func (t *PolygonTrigger) Name() string    { return t.name }
func (t *PolygonTrigger) Points() []Coord { return t.points }

// Center is the middle of the bounding box.
func (t *PolygonTrigger) Center() Coord {
	return Coord{X: (t.min.X + t.max.X) / 2, Y: (t.min.Y + t.max.Y) / 2}
}

// Radius of the circle around Center that encloses every point.
func (t *PolygonTrigger) Radius() float64 {
	return t.Center().DistanceTo(t.max)
}

// Contains is an even-odd ray cast. Polygons with fewer than three points
// contain nothing.
func (t *PolygonTrigger) Contains(p Coord) bool {
	n := len(t.points)
	if n < 3 {
		return false
	}
	if p.X < t.min.X || p.X > t.max.X || p.Y < t.min.Y || p.Y > t.max.Y {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := t.points[i], t.points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// WaypointPath is a named, ordered route.
type WaypointPath struct {
	name   string
	points []Coord
}

func NewWaypointPath(name string, points []Coord) *WaypointPath {
	return &WaypointPath{name: name, points: append([]Coord(nil), points...)}
}

func (w *WaypointPath) Name() string    { return w.name }
func (w *WaypointPath) Points() []Coord { return w.points }

// End is the last waypoint, or the zero coord for an empty path.
func (w *WaypointPath) End() Coord {
	if len(w.points) == 0 {
		return Coord{}
	}
	return w.points[len(w.points)-1]
}
