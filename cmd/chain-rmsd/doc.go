/*
chain-rmsd computes the RMSD between the carbon-alpha atoms of two chains read
from PDB files. Each chain is specified by a PDB file path and a chain
identifier, and both chains must have exactly the same number of carbon-alpha
atoms. Atoms are paired in residue order, so it is most useful for comparing
a chain written by extract-chain with the chain it was extracted from.

A PDB file may either be plain text or compressed using the Lempel-Ziv coding
(i.e., gzip). If the PDB file is gzipped, it must end with a '.gz' extension.

Usage:
	chain-rmsd pdb-file chain-id pdb-file chain-id

Details

The algorithm used to compute RMSD is based on the Kabsch algorithm for
computing the optimal superposition which minimizes RMSD between two paired
sets of points.
*/
package main
