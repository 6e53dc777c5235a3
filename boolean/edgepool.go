//-----------------------------------------------------------------------------
/*

Shared-edge bookkeeping, mirroring ops/edgepool.go and primitives/edgepool.go:
the grid decomposition fast path shares lattice edges between adjacent
boundary quads the same way the canonical primitives and sweep operations do.

*/
//-----------------------------------------------------------------------------

package boolean

import (
	"github.com/sequoia-hope/waffle-iron/geom"
	"github.com/sequoia-hope/waffle-iron/topo"
)

type edgeKey struct {
	a, b topo.VertexHandle
}

func newEdgeKey(a, b topo.VertexHandle) edgeKey {
	if a <= b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

type edgeRecord struct {
	fwdFrom topo.VertexHandle
	heFwd   topo.HalfEdgeHandle
	heRev   topo.HalfEdgeHandle
}

type edgePool struct {
	store   *topo.Store
	records map[edgeKey]*edgeRecord
}

func newGridEdgePool(store *topo.Store) *edgePool {
	return &edgePool{store: store, records: make(map[edgeKey]*edgeRecord)}
}

func (p *edgePool) lineEdge(from, to topo.VertexHandle) topo.HalfEdgeHandle {
	key := newEdgeKey(from, to)
	rec, ok := p.records[key]
	if !ok {
		fv, _ := p.store.Vertex(from)
		tv, _ := p.store.Vertex(to)
		dir := tv.Point.Sub(fv.Point).Normalize()
		curve := geom.NewLineCurve(geom.Line{Origin: fv.Point, Dir: dir})
		_, heFwd, heRev := p.store.AddEdge(curve, from, to)
		rec = &edgeRecord{fwdFrom: from, heFwd: heFwd, heRev: heRev}
		p.records[key] = rec
		return heFwd
	}
	if rec.fwdFrom == from {
		return rec.heFwd
	}
	return rec.heRev
}
