package herobg

import (
	"math/rand"

	"github.com/fogleman/delaunay"
)

// An axis-aligned region and the number of points scattered into it. Each
// region is triangulated independently.
type meshRegion struct {
	x0, x1, y0, y1 float64
	points         int
}

var meshRegions = []meshRegion{
	{0.5, 2.5, 0.5, 2.5, 15}, // bottom left
	{7, 9.5, 7, 9.5, 12},     // top right
	{3, 6, 2, 5, 18},         // center-left
}

const (
	meshAlpha = 0.12
	meshWidth = 0.6 // points
)

// strokeMeshes scatters seeded points into each region and strokes the edges
// of their Delaunay triangulations.
func (r *Renderer) strokeMeshes() error {
	rng := rand.New(rand.NewSource(r.opt.MeshSeed))
	r.dc.SetRGBA(1, 1, 1, meshAlpha)
	r.dc.SetLineWidth(r.pt(meshWidth))
	for _, reg := range meshRegions {
		tri, err := delaunay.Triangulate(scatterRegion(rng, reg))
		if err != nil {
			return err
		}
		// Interior edges appear as two half-edges; stroke each edge once.
		for e := range tri.Triangles {
			if e <= tri.Halfedges[e] {
				continue
			}
			p := tri.Points[tri.Triangles[e]]
			q := tri.Points[tri.Triangles[nextHalfedge(e)]]
			r.dc.DrawLine(r.px(p.X), r.py(p.Y), r.px(q.X), r.py(q.Y))
		}
		r.dc.Stroke()
	}
	return nil
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// scatterRegion draws all x coordinates from rng, then all y coordinates.
func scatterRegion(rng *rand.Rand, reg meshRegion) []delaunay.Point {
	xs := uniforms(rng, reg.points, reg.x0, reg.x1)
	ys := uniforms(rng, reg.points, reg.y0, reg.y1)
	pts := make([]delaunay.Point, reg.points)
	for i := range pts {
		pts[i] = delaunay.Point{X: xs[i], Y: ys[i]}
	}
	return pts
}
