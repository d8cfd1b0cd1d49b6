package util

import (
	"github.com/hoyinchu/egfr-competition-analysis/pdb"
)

func PDBRead(path string) *pdb.Entry {
	entry, err := pdb.ReadPDB(path)
	Assert(err, "Could not open PDB file '%s'", path)
	return entry
}

// PDBChain returns the chain with the given identifier in the first model of
// the PDB file at path.
func PDBChain(path, ident string) *pdb.Chain {
	chain, err := PDBRead(path).FirstChain(ident)
	Assert(err, "Could not read chain from '%s'", path)
	return chain
}
