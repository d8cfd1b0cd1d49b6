package rmsd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hoyinchu/egfr-competition-analysis/pdb"
)

// RMSD implements a version of the Kabsch algorithm. It returns the root mean
// square deviation between two paired sets of points after the first set has
// been optimally rotated and translated onto the second.
//
// A brief, high-level overview:
//
// Build the Nx3 matrices X and Y containing, for the sets x and y
// respectively, the coordinates of each of the N points after centering
// them by subtracting the centroids.
//
// Compute the covariance matrix C = (X^T)Y and its singular value
// decomposition C = US(V^T).
//
// The optimal rotation never needs to be formed. With E0 the sum of squared
// norms of X and Y, the minimal squared deviation is E0 - 2(s1 + s2 + d*s3)
// where s1 >= s2 >= s3 are the singular values and d = sign(det(U)det(V)).
// A negative d marks a reflection, which is corrected by flipping the sign of
// the smallest singular value.
//
// Note that RMSD will panic if the lengths of struct1 and struct2 differ.
// RMSD will also panic if the SVD cannot be computed.
func RMSD(struct1, struct2 []pdb.Coords) float64 {
	if len(struct1) != len(struct2) {
		panic(fmt.Sprintf("Computing the RMSD of two structures require that "+
			"they have equal length. But the lengths of the two structures "+
			"provided are %d and %d.", len(struct1), len(struct2)))
	}
	if len(struct1) == 0 {
		return 0
	}

	X, ex := centered(struct1)
	Y, ey := centered(struct2)

	var C mat.Dense
	C.Mul(X.T(), Y)

	var svd mat.SVD
	if ok := svd.Factorize(&C, mat.SVDFull); !ok {
		panic("SVD of the covariance matrix failed to converge")
	}
	var U, V mat.Dense
	svd.UTo(&U)
	svd.VTo(&V)
	s := svd.Values(nil)
	if mat.Det(&U)*mat.Det(&V) < 0 {
		s[2] = -s[2]
	}

	msd := (ex + ey - 2*(s[0]+s[1]+s[2])) / float64(len(struct1))
	if msd < 0 {
		// Round off when the two sets superimpose exactly.
		return 0
	}
	return math.Sqrt(msd)
}

// centered returns the points as an Nx3 matrix with their centroid
// subtracted, along with the sum of squared norms of the rows.
func centered(points []pdb.Coords) (*mat.Dense, float64) {
	c := centroid(points)
	data := make([]float64, 0, 3*len(points))
	var sumSq float64
	for _, p := range points {
		x, y, z := p.X-c.X, p.Y-c.Y, p.Z-c.Z
		data = append(data, x, y, z)
		sumSq += x*x + y*y + z*z
	}
	return mat.NewDense(len(points), 3, data), sumSq
}

// centroid calculates the average position of a set of points.
func centroid(points []pdb.Coords) pdb.Coords {
	var c pdb.Coords
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	n := float64(len(points))
	return pdb.Coords{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}

// Chains is a convenience function for computing the RMSD between two chains.
// Note that RMSD is only computed using carbon-alpha atoms, paired in residue
// order.
//
// An error is returned if either chain has no carbon-alpha atoms, or if the
// chains do not have precisely the same number of carbon-alpha atoms.
func Chains(chain1, chain2 *pdb.Chain) (float64, error) {
	struct1, struct2 := chain1.CaAtoms(), chain2.CaAtoms()
	if len(struct1) == 0 {
		return 0, fmt.Errorf("chain %s of '%s' has no carbon-alpha atoms",
			chain1.Ident, chainPath(chain1))
	}
	if len(struct2) == 0 {
		return 0, fmt.Errorf("chain %s of '%s' has no carbon-alpha atoms",
			chain2.Ident, chainPath(chain2))
	}
	if len(struct1) != len(struct2) {
		return 0, fmt.Errorf("chain %s of '%s' has %d carbon-alpha atoms "+
			"but chain %s of '%s' has %d; both chains must have the same "+
			"number of carbon-alpha atoms",
			chain1.Ident, chainPath(chain1), len(struct1),
			chain2.Ident, chainPath(chain2), len(struct2))
	}
	return RMSD(struct1, struct2), nil
}

func chainPath(c *pdb.Chain) string {
	if c.Model == nil || c.Model.Entry == nil {
		return ""
	}
	return c.Model.Entry.Path
}
