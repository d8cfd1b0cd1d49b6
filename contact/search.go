package contact

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/hoyinchu/egfr-competition-analysis/pdb"
)

// point is an atom stored in a k-d tree.
type point struct {
	*pdb.Atom
}

func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(point)
	switch d {
	case 0:
		return p.X - q.X
	case 1:
		return p.Y - q.Y
	case 2:
		return p.Z - q.Z
	}
	panic("illegal dimension")
}

func (p point) Dims() int { return 3 }

// Distance returns the squared Euclidean distance, as kdtree requires.
func (p point) Distance(c kdtree.Comparable) float64 {
	return p.Coords.Dist2(c.(point).Coords)
}

// points satisfies kdtree.Interface.
type points []point

func (ps points) Index(i int) kdtree.Comparable         { return ps[i] }
func (ps points) Len() int                              { return len(ps) }
func (ps points) Pivot(d kdtree.Dim) int                { return plane{ps, d}.Pivot() }
func (ps points) Slice(start, end int) kdtree.Interface { return ps[start:end] }

// plane sorts points along a single dimension.
type plane struct {
	points
	kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	return p.points[i].Compare(p.points[j], p.Dim) < 0
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

// NeighborSearch answers "which atoms are within r of this point" queries
// over a fixed set of atoms. It is built once and may be queried any number
// of times.
type NeighborSearch struct {
	tree *kdtree.Tree
}

// NewNeighborSearch builds a k-d tree over atoms. The slice is not modified.
func NewNeighborSearch(atoms []*pdb.Atom) *NeighborSearch {
	ps := make(points, len(atoms))
	for i, atom := range atoms {
		ps[i] = point{atom}
	}
	return &NeighborSearch{tree: kdtree.New(ps, false)}
}

// Len returns the number of atoms in the search tree.
func (ns *NeighborSearch) Len() int {
	return ns.tree.Len()
}

// Search returns every atom whose distance to center is at most radius.
// The order of the atoms returned is unspecified.
func (ns *NeighborSearch) Search(center pdb.Coords, radius float64) []*pdb.Atom {
	keep := kdtree.NewDistKeeper(radius * radius)
	ns.tree.NearestSet(keep, point{&pdb.Atom{Coords: center}})

	found := make([]*pdb.Atom, 0, len(keep.Heap))
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		found = append(found, c.Comparable.(point).Atom)
	}
	return found
}
