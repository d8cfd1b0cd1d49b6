package main

import (
	"flag"
	"fmt"

	"github.com/hoyinchu/egfr-competition-analysis/cmd/util"
	"github.com/hoyinchu/egfr-competition-analysis/pdb"
)

var (
	flagPdb    = ""
	flagChain  = ""
	flagOutput = ""
)

func init() {
	flag.StringVar(&flagPdb, "pdb", flagPdb,
		"The PDB file to read. It may be gzipped if it ends with '.gz'.")
	flag.StringVar(&flagChain, "chain", flagChain,
		"The identifier of the chain to extract. i.e., 'A'.")
	flag.StringVar(&flagOutput, "output", flagOutput,
		"The PDB file to write the reindexed chain to.")

	util.FlagParse("",
		"Extracts a single chain from a PDB file, renumbers its residues\n"+
			"from 1 and writes it to a new PDB file.")
	util.AssertNArg(0)
	util.AssertFlag("pdb", flagPdb)
	util.AssertFlag("chain", flagChain)
	util.AssertFlag("output", flagOutput)
}

func main() {
	util.AssertIsFile(flagPdb)

	chain, err := pdb.Extract(flagPdb, flagChain, flagOutput)
	util.Assert(err, "Could not extract chain %s", flagChain)
	fmt.Printf("Chain %s extracted, reindexed, and saved to %s (%d residues).\n",
		flagChain, flagOutput, len(chain.Residues))
}
