/*
Package rmsd implements a version of the Kabsch algorithm for computing the
RMSD between two paired sets of points after optimal superposition. The
singular value decomposition is done with gonum.org/v1/gonum/mat.

A convenience function for computing the RMSD of the carbon-alpha atoms of
two chains is also provided.
*/
package rmsd
