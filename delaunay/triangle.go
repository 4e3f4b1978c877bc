package delaunay

import "github.com/katalvlaran/geograph/geom"

// newRootTriangle builds the tree's permanently-in-conflict root: three
// symbolic points at infinity arranged around the origin at radius 1,
// far enough to dominate any finite query.
func newRootTriangle(tree *Tree) *Triangle {
	t := &Triangle{
		Vertices: [3]*Vertex{
			{Point: geom.Point{X: 1.0, Y: 0.0}, Label: UnlabeledVertex},
			{Point: geom.Point{X: -0.5, Y: 0.8660254}, Label: UnlabeledVertex},
			{Point: geom.Point{X: -0.5, Y: -0.8660254}, Label: UnlabeledVertex},
		},
	}
	t.Flag.SetInfiniteDegree(3)
	tree.triangles = append(tree.triangles, t)

	return t
}

// newGhostChild builds one of the root's three "ghost-of-ghost"
// neighbors: infinite degree 4, never in conflict, sharing the root's
// three vertices. These give the outer boundary of the universe a
// neighbor to walk into without ever being selected as a conflict.
func newGhostChild(tree *Tree, parent *Triangle, i int) *Triangle {
	t := &Triangle{Vertices: parent.Vertices}
	t.Flag.SetInfiniteDegree(4)
	t.Neighbors[i] = parent
	parent.Neighbors[i] = t
	tree.triangles = append(tree.triangles, t)

	return t
}

// newChildAtVertex creates the new triangle that replaces the boundary
// edge i of the dead triangle parent with an apex at v, per step 5 of
// the insertion algorithm. It wires both of its DAG parents (parent and
// the live triangle across edge i) and inherits vertices/neighbor 0 from
// parent's edge i.
func newChildAtVertex(tree *Tree, parent *Triangle, v *Vertex, i int) *Triangle {
	t := &Triangle{}

	switch parent.Flag.InfiniteDegree() {
	case 0:
		t.Flag.SetInfiniteDegree(0)
	case 1:
		if parent.Flag.LastFinite() {
			if i == 1 {
				t.Flag.SetInfiniteDegree(0)
			} else {
				t.Flag.SetInfiniteDegree(1)
			}
		} else {
			if i == 2 {
				t.Flag.SetInfiniteDegree(0)
			} else {
				t.Flag.SetInfiniteDegree(1)
			}
		}
		if t.Flag.InfiniteDegree() != 0 {
			if parent.Flag.LastFinite() {
				if i == 0 {
					t.Flag.SetLastFinite()
				}
			} else {
				if i == 1 {
					t.Flag.SetLastFinite()
				}
			}
		}
	case 2:
		if i == 0 {
			t.Flag.SetInfiniteDegree(2)
		} else {
			t.Flag.SetInfiniteDegree(1)
		}
		if i == 1 {
			t.Flag.SetLastFinite()
		}
	case 3:
		t.Flag.SetInfiniteDegree(2)
	}

	parent.Sons = append(parent.Sons, t)
	across := parent.Neighbors[i]
	across.Sons = append(across.Sons, t)
	across.Neighbors[across.neighborIndex(parent)] = t

	t.Vertices[0] = v
	t.Neighbors[0] = across

	switch i {
	case 0:
		t.Vertices[1] = parent.Vertices[1]
		t.Vertices[2] = parent.Vertices[2]
	case 1:
		t.Vertices[1] = parent.Vertices[2]
		t.Vertices[2] = parent.Vertices[0]
	case 2:
		t.Vertices[1] = parent.Vertices[0]
		t.Vertices[2] = parent.Vertices[1]
	}

	tree.triangles = append(tree.triangles, t)

	return t
}

// neighborIndex returns the index at which other appears in t's
// Neighbors array.
func (t *Triangle) neighborIndex(other *Triangle) int {
	switch other {
	case t.Neighbors[0]:
		return 0
	case t.Neighbors[1]:
		return 1
	default:
		return 2
	}
}

// cwNeighbor returns the neighbor index opposite v, used to walk
// clockwise around a vertex shared by a fan of triangles.
func (t *Triangle) cwNeighbor(v *Vertex) int {
	switch v {
	case t.Vertices[0]:
		return 2
	case t.Vertices[1]:
		return 0
	default:
		return 1
	}
}

// conflict reports whether v lies inside the region claimed by t,
// dispatching on t's infinite degree.
func (t *Triangle) conflict(v *Vertex) bool {
	switch t.Flag.InfiniteDegree() {
	case 4:
		return false
	case 3:
		return true
	case 2:
		s1 := t.Vertices[1].Point
		s2 := t.Vertices[2].Point
		w := t.Vertices[0].Point
		sum := geom.Point{X: s1.X + s2.X, Y: s1.Y + s2.Y}

		return geom.Dot(v.Point.Sub(w), sum) >= 0
	case 1:
		if t.Flag.LastFinite() {
			return geom.Cross(v.Point.Sub(t.Vertices[2].Point), t.Vertices[2].Point.Sub(t.Vertices[0].Point)) >= 0
		}

		return geom.Cross(v.Point.Sub(t.Vertices[0].Point), t.Vertices[0].Point.Sub(t.Vertices[1].Point)) >= 0
	default:
		tri := [3]geom.Point{t.Vertices[0].Point, t.Vertices[1].Point, t.Vertices[2].Point}

		return geom.InCircumcircle(tri, v.Point)
	}
}

// findConflict descends the history DAG from t, returning the first
// leaf triangle in conflict with v, or nil if none is found (v falls
// outside the current universe). token guards against revisiting a
// triangle reachable through more than one parent in the same walk.
func (t *Triangle) findConflict(v *Vertex, token uint64) *Triangle {
	if !t.conflict(v) {
		return nil
	}
	if !t.Flag.Dead() {
		return t
	}

	for _, son := range t.Sons {
		if son.visited == token {
			continue
		}
		son.visited = token
		if found := son.findConflict(v, token); found != nil {
			return found
		}
	}

	return nil
}
