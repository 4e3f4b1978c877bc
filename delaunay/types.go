package delaunay

import (
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/geograph/geom"
)

// ErrDegenerateVertex indicates that an inserted vertex coincides
// exactly with a finite vertex already present in the tree.
var ErrDegenerateVertex = errors.New("delaunay: inserted vertex coincides with an existing vertex")

// ErrTooFewVertices indicates that BatchInsert was called with fewer
// than three vertices; a triangulation needs at least a single triangle.
var ErrTooFewVertices = errors.New("delaunay: at least three vertices are required")

// UnlabeledVertex is the sentinel label used for vertices that carry no
// connected-component identity.
const UnlabeledVertex = -1

// Vertex is a finite, labeled point tracked by a Tree. Equality inside
// the tree is by pointer identity, never by coordinate value — two
// Vertex values with identical coordinates are distinct tree members
// unless they are the same pointer. seq assigns a stable creation order
// so vertex-pair canonicalization (NeighborVertices) does not need to
// compare pointer addresses.
type Vertex struct {
	Point geom.Point
	Label int
	seq   uint64
}

var vertexSeq uint64

// NewVertex constructs an unlabeled Vertex at (x, y).
func NewVertex(x, y float64) *Vertex {
	return &Vertex{Point: geom.Point{X: x, Y: y}, Label: UnlabeledVertex, seq: atomic.AddUint64(&vertexSeq, 1)}
}

// NewLabeledVertex constructs a Vertex at (x, y) carrying label.
func NewLabeledVertex(x, y float64, label int) *Vertex {
	return &Vertex{Point: geom.Point{X: x, Y: y}, Label: label, seq: atomic.AddUint64(&vertexSeq, 1)}
}

// TriangleFlag packs a triangle's dead/alive state, its infinite degree
// (how many of its three vertices are symbolic points at infinity, 0-4
// where 4 marks a ghost-of-ghost triangle that is never in conflict),
// and, when exactly one vertex is finite, which side of that vertex the
// triangle lies on.
type TriangleFlag uint8

const (
	flagInfiniteMask  TriangleFlag = 0x07
	flagLastFiniteBit TriangleFlag = 0x08
	flagDeadBit       TriangleFlag = 0x10
)

// Dead reports whether this triangle has been superseded by sons in the
// history DAG.
func (f TriangleFlag) Dead() bool { return f&flagDeadBit != 0 }

// Kill marks the triangle dead. Dead is monotonic and never cleared.
func (f *TriangleFlag) Kill() { *f |= flagDeadBit }

// InfiniteDegree returns how many of the triangle's vertices are
// symbolic points at infinity (0-4; see the package doc for the meaning
// of 4).
func (f TriangleFlag) InfiniteDegree() int { return int(f & flagInfiniteMask) }

// SetInfiniteDegree sets the triangle's infinite degree. It is set
// exactly once, at triangle creation.
func (f *TriangleFlag) SetInfiniteDegree(degree int) { *f |= TriangleFlag(degree) }

// LastFinite reports whether, for a triangle with exactly one finite
// vertex, that vertex is the "last" of the two sentinel-adjacent sides
// (disambiguates which side the finite vertex lies on).
func (f TriangleFlag) LastFinite() bool { return f&flagLastFiniteBit != 0 }

// SetLastFinite sets the LastFinite bit.
func (f *TriangleFlag) SetLastFinite() { *f |= flagLastFiniteBit }

// Triangle is a node of the Delaunay tree's history DAG: a leaf (Flag
// not dead, Sons empty) is part of the current triangulation; an
// internal node (Flag dead, Sons non-empty) has been superseded but is
// kept to accelerate point location for future insertions.
type Triangle struct {
	Vertices  [3]*Vertex
	Neighbors [3]*Triangle
	Flag      TriangleFlag
	Sons      []*Triangle

	// visited is the traversal token guard: a triangle has been visited
	// in the current walk iff visited equals the tree's current token.
	visited uint64
}

// Tree owns every triangle ever created during its lifetime and
// provides point-location and neighbor-extraction queries over the
// current leaf set.
type Tree struct {
	token     uint64
	root      *Triangle
	triangles []*Triangle
	epsilon   float64
}
