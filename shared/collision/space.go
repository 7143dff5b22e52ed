package collision

import (
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/solarlune/resolv"
)

// SpaceObstacles answers obstacle queries from a resolv space. A probe
// object is parked over the queried area and checked against objects with
// the solid tag, so only those sharing a cell with the area reach the
// narrow phase.
type SpaceObstacles struct {
	probe *resolv.Object
	solid string
}

// NewSpaceObstacles adds an untagged probe to space; no other query can
// see it.
func NewSpaceObstacles(space *resolv.Space, solidTag string) *SpaceObstacles {
	probe := resolv.NewObject(0, 0, 1, 1)
	space.Add(probe)
	return &SpaceObstacles{probe: probe, solid: solidTag}
}

func (s *SpaceObstacles) Near(area gamemath.Rect) []gamemath.Rect {
	Sync(s.probe, area)

	check := s.probe.Check(0, 0, s.solid)
	if check == nil {
		return nil
	}
	solids := check.ObjectsByTags(s.solid)
	rects := make([]gamemath.Rect, 0, len(solids))
	for _, o := range solids {
		rects = append(rects, ObjectRect(o))
	}
	return rects
}

// ObjectRect converts a resolv object's bounds to whole pixels.
func ObjectRect(o *resolv.Object) gamemath.Rect {
	return gamemath.NewRect(int(o.X), int(o.Y), int(o.W), int(o.H))
}

// Sync moves o onto r and refreshes the cells it occupies.
func Sync(o *resolv.Object, r gamemath.Rect) {
	o.X = float64(r.X)
	o.Y = float64(r.Y)
	o.W = float64(r.W)
	o.H = float64(r.H)
	o.Update()
}
