//-----------------------------------------------------------------------------
/*

Signature similarity scoring, per spec.md §4.8: a weighted average of
matched attributes, in [0, 1].

*/
//-----------------------------------------------------------------------------

package provenance

import "math"

// Similarity scores how alike two signatures are, weighted average in
// [0, 1]. Mismatched kinds score 0.
func Similarity(a, b Signature) float64 {
	if a.Kind != b.Kind {
		return 0
	}

	var totalWeight, scoreSum float64

	if a.Kind == KindFace {
		const wSurface = 3.0
		totalWeight += wSurface
		if a.HasSurface && b.HasSurface && a.SurfaceTag == b.SurfaceTag {
			scoreSum += wSurface
		}

		const wArea = 2.0
		totalWeight += wArea
		scoreSum += wArea * relativeMatch(a.Area, b.Area)

		const wNormal = 2.0
		totalWeight += wNormal
		dot := a.Normal.Dot(b.Normal)
		scoreSum += wNormal * ((dot + 1) / 2)
	}

	if a.Kind == KindEdge {
		const wLength = 2.0
		totalWeight += wLength
		scoreSum += wLength * relativeMatch(a.Length, b.Length)
	}

	const wCentroid = 2.0
	totalWeight += wCentroid
	d := a.Centroid.Sub(b.Centroid).Length()
	scoreSum += wCentroid * centroidMatch(d)

	if totalWeight == 0 {
		return 0
	}
	return scoreSum / totalWeight
}

// relativeMatch maps a relative difference to a [0,1] score: 1 at 0%
// difference, falling linearly to 0 at 100% difference.
func relativeMatch(a, b float64) float64 {
	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom == 0 {
		return 1
	}
	diff := math.Abs(a-b) / denom
	if diff >= 1 {
		return 0
	}
	return 1 - diff
}

// centroidMatch maps a centroid distance to a [0,1] score: 1 within 0.1
// units, falling linearly to 0 at 10 units.
func centroidMatch(d float64) float64 {
	const near = 0.1
	const far = 10.0
	if d <= near {
		return 1
	}
	if d >= far {
		return 0
	}
	return 1 - (d-near)/(far-near)
}
