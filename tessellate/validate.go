//-----------------------------------------------------------------------------
/*

Mesh validation: boundary/non-manifold edge detection, winding
consistency, Euler characteristic, degenerate triangle detection and
signed volume, feeding the watertight/printable predicates of spec.md
§4.10.

*/
//-----------------------------------------------------------------------------

package tessellate

// MeshReport summarizes a triangle mesh's closure and manifoldness.
type MeshReport struct {
	BoundaryEdges    int
	NonManifoldEdges int
	WindingConsistent bool
	EulerCharacteristic int
	DegenerateTriangles int
	SignedVolume     float64
}

// Watertight reports whether the mesh has no boundary and no non-manifold
// edges.
func (r MeshReport) Watertight() bool {
	return r.BoundaryEdges == 0 && r.NonManifoldEdges == 0
}

// Printable reports watertightness plus consistent winding, zero
// degenerate triangles, and positive signed volume.
func (r MeshReport) Printable() bool {
	return r.Watertight() && r.WindingConsistent && r.DegenerateTriangles == 0 && r.SignedVolume > 0
}

// Validate computes a MeshReport for mesh.
func Validate(mesh *Mesh) MeshReport {
	report := MeshReport{SignedVolume: signedVolume(mesh)}

	type occurrence struct{ a, b int }
	counts := map[[2]int][]occurrence{}
	for _, t := range mesh.Triangles {
		a, b, c := t.A, t.B, t.C
		if a == b || b == c || a == c {
			report.DegenerateTriangles++
			continue
		}
		if triangleArea(mesh, t) <= 0 {
			report.DegenerateTriangles++
		}
		for _, e := range [][2]int{{a, b}, {b, c}, {c, a}} {
			u, v := undirected(e[0], e[1])
			counts[[2]int{u, v}] = append(counts[[2]int{u, v}], occurrence{a: e[0], b: e[1]})
		}
	}

	windingOK := true
	for _, occs := range counts {
		switch len(occs) {
		case 1:
			report.BoundaryEdges++
		case 2:
			if occs[0].a == occs[1].a && occs[0].b == occs[1].b {
				windingOK = false
			}
		default:
			report.NonManifoldEdges++
		}
	}
	report.WindingConsistent = windingOK

	v := len(mesh.Vertices)
	e := len(counts)
	f := len(mesh.Triangles)
	report.EulerCharacteristic = v - e + f

	return report
}

func triangleArea(mesh *Mesh, t Triangle) float64 {
	ab := mesh.Vertices[t.B].Sub(mesh.Vertices[t.A])
	ac := mesh.Vertices[t.C].Sub(mesh.Vertices[t.A])
	return ab.Cross(ac).Length() / 2
}
