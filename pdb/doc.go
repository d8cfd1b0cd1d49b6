/*
Package pdb reads and writes the coordinate records of PDB files.

Only ATOM, HETATM, MODEL and ENDMDL records are read. The result is a tree of
Entry -> Model -> Chain -> Residue -> Atom values, where each value also has a
pointer back to its parent. Files ending in ".gz" are decompressed on the fly.

A single chain can be written back out with WriteChain. Extract combines
reading, chain lookup, residue renumbering and writing:

	chain, err := pdb.Extract("complex.pdb", "A", "binder.pdb")
	if errors.Is(err, pdb.ErrChainNotFound) {
		...
	}
*/
package pdb
