//-----------------------------------------------------------------------------
/*

Profile extraction: turn a solved sketch's entities and point positions into
closed regions. A standalone circle is its own profile. Lines and arcs
build a directed-edge graph (two directed half-edges per segment); minimal
faces are found by walking, at each arrival vertex, the next outgoing edge
immediately counter-clockwise of the reverse of the arriving edge — the
"tightest right turn" rule of a half-edge planar-face walk. The shoelace
sign of each face's vertex loop classifies it outer (CCW) or hole (CW).
The largest-area non-circle face (the first found, on a tie) is discarded
as the unbounded exterior only when it is CW; when it is CCW, as for a lone
simple loop whose CCW face is walked first, nothing is discarded and the CW
complement stays in the result.

*/
//-----------------------------------------------------------------------------

package sketch

import (
	"math"
	"sort"

	"github.com/sequoia-hope/waffle-iron/geom"
)

type directedEdge struct {
	from, to EntityID
	entityID EntityID
}

type edgeKey struct {
	from, to, entityID EntityID
}

// ExtractProfiles derives closed profiles from a sketch's entities and
// solved point positions.
func ExtractProfiles(entities []Entity, positions map[EntityID]geom.Vec2) []ClosedProfile {
	var profiles []ClosedProfile

	byID := make(map[EntityID]Entity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}

	for _, e := range entities {
		if e.Kind == EntityCircle && !e.Construction {
			profiles = append(profiles, ClosedProfile{EntityIDs: []EntityID{e.ID}, IsOuter: true})
		}
	}

	var edges []directedEdge
	for _, e := range entities {
		if e.Construction {
			continue
		}
		switch e.Kind {
		case EntityLine, EntityArc:
			edges = append(edges,
				directedEdge{from: e.StartID, to: e.EndID, entityID: e.ID},
				directedEdge{from: e.EndID, to: e.StartID, entityID: e.ID},
			)
		}
	}
	if len(edges) == 0 {
		return profiles
	}

	adjacency := make(map[EntityID][]directedEdge)
	for _, e := range edges {
		adjacency[e.from] = append(adjacency[e.from], e)
	}
	for from, out := range adjacency {
		fromPos, ok := positions[from]
		if !ok {
			continue
		}
		sort.Slice(out, func(i, j int) bool {
			return departureAngle(fromPos, positions, out[i]) < departureAngle(fromPos, positions, out[j])
		})
		adjacency[from] = out
	}

	used := make(map[edgeKey]bool, len(edges))
	for _, e := range edges {
		used[edgeKey{e.from, e.to, e.entityID}] = false
	}

	for _, start := range edges {
		startKey := edgeKey{start.from, start.to, start.entityID}
		if used[startKey] {
			continue
		}

		var faceEntities []EntityID
		var faceVertices []EntityID
		current := start

		for {
			key := edgeKey{current.from, current.to, current.entityID}
			already, tracked := used[key]
			if !tracked {
				break
			}
			if already {
				break
			}
			used[key] = true

			if len(faceEntities) == 0 || faceEntities[len(faceEntities)-1] != current.entityID {
				faceEntities = append(faceEntities, current.entityID)
			}
			faceVertices = append(faceVertices, current.from)

			next, ok := nextHalfEdge(adjacency, current, positions)
			if !ok {
				break
			}
			if next.from == start.from && next.to == start.to && next.entityID == start.entityID {
				break
			}
			current = next
		}

		if len(faceEntities) >= 2 {
			winding := signedArea(faceVertices, positions)
			profiles = append(profiles, ClosedProfile{EntityIDs: faceEntities, IsOuter: winding > 0})
		}
	}

	if len(profiles) > 1 {
		maxArea := 0.0
		maxIdx := -1
		for i, p := range profiles {
			if len(p.EntityIDs) == 1 {
				if ent, ok := byID[p.EntityIDs[0]]; ok && ent.Kind == EntityCircle {
					continue
				}
			}
			area := math.Abs(profileArea(p, byID, positions))
			if area > maxArea {
				maxArea = area
				maxIdx = i
			}
		}
		if maxIdx >= 0 && !profiles[maxIdx].IsOuter {
			profiles = append(profiles[:maxIdx], profiles[maxIdx+1:]...)
		}
	}

	return profiles
}

func departureAngle(from geom.Vec2, positions map[EntityID]geom.Vec2, e directedEdge) float64 {
	to := positions[e.to]
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// nextHalfEdge finds the outgoing edge at current.to that makes the
// tightest clockwise turn away from the direction current arrived from.
func nextHalfEdge(adjacency map[EntityID][]directedEdge, current directedEdge, positions map[EntityID]geom.Vec2) (directedEdge, bool) {
	out := adjacency[current.to]
	if len(out) == 0 {
		return directedEdge{}, false
	}

	vertexPos, ok := positions[current.to]
	if !ok {
		return directedEdge{}, false
	}
	fromPos, ok := positions[current.from]
	if !ok {
		return directedEdge{}, false
	}
	incomingAngle := math.Atan2(fromPos.Y-vertexPos.Y, fromPos.X-vertexPos.X)

	var best directedEdge
	found := false
	bestDelta := math.MaxFloat64

	for _, e := range out {
		if e.to == current.from && e.entityID == current.entityID {
			continue
		}
		edgeAngle := departureAngle(vertexPos, positions, e)
		delta := edgeAngle - incomingAngle
		for delta <= 0 {
			delta += 2 * math.Pi
		}
		for delta > 2*math.Pi {
			delta -= 2 * math.Pi
		}
		if delta < bestDelta {
			bestDelta = delta
			best = e
			found = true
		}
	}
	return best, found
}

func signedArea(vertices []EntityID, positions map[EntityID]geom.Vec2) float64 {
	if len(vertices) < 3 {
		return 0
	}
	area := 0.0
	n := len(vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p1 := positions[vertices[i]]
		p2 := positions[vertices[j]]
		area += p1.X*p2.Y - p2.X*p1.Y
	}
	return area / 2
}

func profileArea(p ClosedProfile, byID map[EntityID]Entity, positions map[EntityID]geom.Vec2) float64 {
	var vertices []EntityID
	for _, id := range p.EntityIDs {
		e, ok := byID[id]
		if !ok {
			continue
		}
		switch e.Kind {
		case EntityLine, EntityArc:
			vertices = append(vertices, e.StartID)
		}
	}
	return signedArea(vertices, positions)
}
