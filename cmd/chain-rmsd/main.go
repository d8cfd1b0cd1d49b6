package main

import (
	"fmt"

	"github.com/hoyinchu/egfr-competition-analysis/cmd/util"
	"github.com/hoyinchu/egfr-competition-analysis/rmsd"
)

func init() {
	util.FlagParse("pdb-file chain-id pdb-file chain-id",
		"Computes the RMSD between the carbon-alpha atoms of two chains.")
	util.AssertNArg(4)
}

func main() {
	chain1 := util.PDBChain(util.Arg(0), util.Arg(1))
	chain2 := util.PDBChain(util.Arg(2), util.Arg(3))

	d, err := rmsd.Chains(chain1, chain2)
	util.Assert(err)
	fmt.Println(d)
}
