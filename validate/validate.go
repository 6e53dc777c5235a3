//-----------------------------------------------------------------------------
/*

Leveled B-Rep validation entry point (spec.md §4.11): topology, geometry,
spatial and (optional) continuity passes, each returning typed Issues.
Only topology issues are fatal for downstream steps.

*/
//-----------------------------------------------------------------------------

package validate

import "github.com/sequoia-hope/waffle-iron/topo"

// Options controls which optional passes Run executes.
type Options struct {
	CheckSelfIntersection bool
	CheckContinuity       bool
}

// Report is the full leveled audit result for one solid.
type Report struct {
	Topology   []Issue
	Geometry   []Issue
	Spatial    []Issue
	Continuity []Issue
}

// Fatal reports whether the audit found topology issues, the only level
// that always blocks downstream steps (tessellation, export).
func (r Report) Fatal() bool {
	return len(r.Topology) > 0
}

// Run executes every pass against solid and returns the combined report.
func Run(store *topo.Store, solid topo.SolidHandle, opts Options) Report {
	tolerance := store.Tolerance()

	report := Report{
		Topology: Topology(store, solid),
		Geometry: Geometry(store, solid),
		Spatial:  Spatial(store, solid, opts.CheckSelfIntersection),
	}
	if opts.CheckContinuity {
		report.Continuity = Continuity(store, solid, tolerance.EdgeGap)
	}
	return report
}
