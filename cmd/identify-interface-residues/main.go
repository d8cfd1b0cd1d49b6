package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hoyinchu/egfr-competition-analysis/cmd/util"
	"github.com/hoyinchu/egfr-competition-analysis/contact"
)

var (
	flagChainA    = contact.DefaultScanner.ChainA
	flagChainB    = contact.DefaultScanner.ChainB
	flagCutoff    = contact.DefaultScanner.Cutoff
	flagOutputCsv = "contact_residues_summary.csv"
)

func init() {
	flag.StringVar(&flagChainA, "chain_A_id", flagChainA,
		"The identifier of the first chain.")
	flag.StringVar(&flagChainB, "chain_B_id", flagChainB,
		"The identifier of the second chain.")
	flag.Float64Var(&flagCutoff, "distance_cutoff", flagCutoff,
		"The distance, in angstroms, at or below which two atoms are in "+
			"contact.")
	flag.StringVar(&flagOutputCsv, "output_csv", flagOutputCsv,
		"The CSV file to write the interface residues to.")

	util.FlagUse("pdb_dir")
	util.FlagParse("",
		"Finds the interface residues between two chains in every PDB file\n"+
			"of a directory and writes them to a CSV file, one row per file.")
	util.AssertNArg(0)
	util.AssertFlag("pdb_dir", util.FlagPdbDir)
}

func main() {
	util.AssertIsDir(util.FlagPdbDir)
	util.Assert(contact.CheckCutoff(flagCutoff), "Invalid -distance_cutoff")

	files, err := contact.Files(util.FlagPdbDir)
	util.Assert(err, "Could not list PDB files in '%s'", util.FlagPdbDir)
	if len(files) == 0 {
		fmt.Printf("No PDB files found in directory %s\n", util.FlagPdbDir)
		return
	}

	s := contact.Scanner{
		ChainA: flagChainA,
		ChainB: flagChainB,
		Cutoff: flagCutoff,
		Log:    log.Default(),
	}

	tab := s.ScanFiles(files)
	if tab.Len() == 0 {
		fmt.Println("No contacts found across all PDBs.")
		return
	}
	util.Assert(tab.WriteFile(flagOutputCsv),
		"Could not write CSV file '%s'", flagOutputCsv)
	fmt.Printf("Saved summarized contact residues to %s\n", flagOutputCsv)
}
