//-----------------------------------------------------------------------------
/*

Shared-edge bookkeeping, mirroring primitives/edgepool.go: operations that
sweep a profile into side faces share edges between consecutive faces the
same way the canonical primitives do.

*/
//-----------------------------------------------------------------------------

package ops

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

func newEdgePool(store *topo.Store) *edgePool {
	return &edgePool{store: store, records: make(map[edgeKey]*edgeRecord)}
}

func (p *edgePool) halfEdge(from, to topo.VertexHandle, makeCurve func() geom.Curve) topo.HalfEdgeHandle {
	key := newEdgeKey(from, to)
	rec, ok := p.records[key]
	if !ok {
		_, heFwd, heRev := p.store.AddEdge(makeCurve(), from, to)
		rec = &edgeRecord{fwdFrom: from, heFwd: heFwd, heRev: heRev}
		p.records[key] = rec
		return heFwd
	}
	if rec.fwdFrom == from {
		return rec.heFwd
	}
	return rec.heRev
}

func (p *edgePool) lineEdge(from, to topo.VertexHandle) topo.HalfEdgeHandle {
	return p.halfEdge(from, to, func() geom.Curve {
		fv, _ := p.store.Vertex(from)
		tv, _ := p.store.Vertex(to)
		dir := tv.Point.Sub(fv.Point).Normalize()
		return geom.NewLineCurve(geom.Line{Origin: fv.Point, Dir: dir})
	})
}
