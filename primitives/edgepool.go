//-----------------------------------------------------------------------------
/*

Shared-edge bookkeeping for primitive construction.

Every canonical primitive (box, cylinder, sphere) builds several faces that
share boundary edges. edgePool hands back the correctly twinned half-edge
for whichever direction a face's loop needs, creating the underlying Edge
exactly once per vertex pair.

*/
//-----------------------------------------------------------------------------

package primitives

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
	fwdFrom topo.VertexHandle // the vertex the forward (stored) half-edge starts from
	heFwd   topo.HalfEdgeHandle
	heRev   topo.HalfEdgeHandle
}

// edgePool deduplicates edges between the same vertex pair so adjacent
// faces share twinned half-edges instead of creating parallel edges.
type edgePool struct {
	store   *topo.Store
	records map[edgeKey]*edgeRecord
}

func newEdgePool(store *topo.Store) *edgePool {
	return &edgePool{store: store, records: make(map[edgeKey]*edgeRecord)}
}

// halfEdge returns the half-edge handle going from `from` to `to`, creating
// the underlying edge (with curve built by makeCurve) on first use.
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

// lineEdge is a convenience for the common case of a straight edge.
func (p *edgePool) lineEdge(store *topo.Store, from, to topo.VertexHandle) topo.HalfEdgeHandle {
	return p.halfEdge(from, to, func() geom.Curve {
		fv, _ := store.Vertex(from)
		tv, _ := store.Vertex(to)
		dir := tv.Point.Sub(fv.Point).Normalize()
		return geom.NewLineCurve(geom.Line{Origin: fv.Point, Dir: dir})
	})
}
