//-----------------------------------------------------------------------------
/*

Loop sampling: turn a solved ClosedProfile's entity-id chain into a plain
polyline, expanding arcs into straight segments so FinishSketch can hand
the result straight to ops.Profile without any caller needing curve
awareness.

*/
//-----------------------------------------------------------------------------

package sketch

import (
	"math"

	"github.com/sequoia-hope/waffle-iron/geom"
)

// DefaultArcSegments is how many straight segments an arc is split into
// when a profile is flattened to a polyline.
const DefaultArcSegments = 16

// Loop samples the ordered vertex chain for one closed profile. A
// standalone circle profile is sampled as a full closed polygon; a
// line/arc chain emits each line's start point and each arc's sampled
// points, relying on chain continuity (each entity's end equals the
// next's start) to avoid duplicating vertices.
func Loop(profile ClosedProfile, byID map[EntityID]Entity, positions map[EntityID]geom.Vec2, arcSegments int) []geom.Vec2 {
	if arcSegments <= 0 {
		arcSegments = DefaultArcSegments
	}
	if len(profile.EntityIDs) == 1 {
		if e, ok := byID[profile.EntityIDs[0]]; ok && e.Kind == EntityCircle {
			center := positions[e.CenterID]
			return circleLoop(center, e.Radius, arcSegments*4)
		}
	}

	var verts []geom.Vec2
	for _, id := range profile.EntityIDs {
		e, ok := byID[id]
		if !ok {
			continue
		}
		switch e.Kind {
		case EntityLine:
			verts = append(verts, positions[e.StartID])
		case EntityArc:
			verts = append(verts, arcPoints(e, positions, arcSegments)...)
		}
	}
	return verts
}

func circleLoop(center geom.Vec2, radius float64, segments int) []geom.Vec2 {
	pts := make([]geom.Vec2, segments)
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = geom.Vec2{X: center.X + radius*math.Cos(t), Y: center.Y + radius*math.Sin(t)}
	}
	return pts
}

// arcPoints samples the counter-clockwise arc from e.StartID to e.EndID
// about e.CenterID, excluding the end point: the chain's next entity
// supplies it as its own start.
func arcPoints(e Entity, positions map[EntityID]geom.Vec2, segments int) []geom.Vec2 {
	center := positions[e.CenterID]
	start := positions[e.StartID]
	end := positions[e.EndID]

	radius := start.Sub(center).Length()
	startAngle := math.Atan2(start.Y-center.Y, start.X-center.X)
	endAngle := math.Atan2(end.Y-center.Y, end.X-center.X)
	for endAngle <= startAngle {
		endAngle += 2 * math.Pi
	}

	pts := make([]geom.Vec2, 0, segments)
	for i := 0; i < segments; i++ {
		t := startAngle + (endAngle-startAngle)*float64(i)/float64(segments)
		pts = append(pts, geom.Vec2{X: center.X + radius*math.Cos(t), Y: center.Y + radius*math.Sin(t)})
	}
	return pts
}

// SameEntitySet reports whether a and b reference the same unordered set
// of entities. ExtractProfiles emits, for every simple closed loop, both
// its bounded CCW face and an unbounded CW complement built from the same
// entities; this lets a caller recognize and discard that complement
// instead of mistaking it for a hole nested inside the loop itself.
func SameEntitySet(a, b []EntityID) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[EntityID]int, len(a))
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
	}
	for _, v := range counts {
		if v != 0 {
			return false
		}
	}
	return true
}
