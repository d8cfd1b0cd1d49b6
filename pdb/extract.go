package pdb

// Extract reads the PDB file at inPath, finds the first chain with identifier
// chainID in the first model, renumbers its residues from 1 and writes only
// that chain to outPath.
//
// An error wrapping ErrChainNotFound is returned if there is no such chain.
func Extract(inPath, chainID, outPath string) (*Chain, error) {
	entry, err := ReadPDB(inPath)
	if err != nil {
		return nil, err
	}
	chain, err := entry.FirstChain(chainID)
	if err != nil {
		return nil, err
	}
	chain.Reindex()
	if err := WriteChainFile(outPath, chain); err != nil {
		return nil, err
	}
	return chain, nil
}
