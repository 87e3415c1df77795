package mesh

import (
	"fmt"

	"github.com/advfront/cdt/cdt"
	"github.com/advfront/cdt/types"
)

// FromCDT builds a validated Mesh from a finished cdt.Sweeper's
// triangulation, resolving cdt.PointId back to coordinates via points.
// Vertices are added in first-use order, so triangles sharing a vertex in
// the source triangulation share it in the resulting Mesh too.
func FromCDT(triangles []cdt.Triangle, points *cdt.PointStore, opts ...Option) (*Mesh, error) {
	m := NewMesh(opts...)

	vertexOf := make(map[cdt.PointId]types.VertexID, points.Len())
	vertexAt := func(id cdt.PointId) (types.VertexID, error) {
		if vid, ok := vertexOf[id]; ok {
			return vid, nil
		}
		p := points.Get(id)
		vid, err := m.AddVertex(types.Point{X: p.X, Y: p.Y})
		if err != nil {
			return types.NilVertex, err
		}
		vertexOf[id] = vid
		return vid, nil
	}

	for _, tri := range triangles {
		v1, err := vertexAt(tri.Points[0])
		if err != nil {
			return nil, err
		}
		v2, err := vertexAt(tri.Points[1])
		if err != nil {
			return nil, err
		}
		v3, err := vertexAt(tri.Points[2])
		if err != nil {
			return nil, err
		}
		if err := m.AddTriangle(v1, v2, v3); err != nil {
			return nil, fmt.Errorf("gomesh: adding triangle %v: %w", tri.Points, err)
		}
	}

	return m, nil
}
