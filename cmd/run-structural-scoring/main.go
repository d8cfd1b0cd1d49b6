package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/hoyinchu/egfr-competition-analysis/apps/foldseek"
	"github.com/hoyinchu/egfr-competition-analysis/cmd/util"
	"github.com/hoyinchu/egfr-competition-analysis/table"
)

var (
	flagReference    = ""
	flagOut          = ""
	flagFoldseekPath = foldseek.DefaultConfig.Exec
)

func init() {
	flag.StringVar(&flagReference, "reference_pdb", flagReference,
		"The reference structure every PDB file is scored against.")
	flag.StringVar(&flagOut, "out", flagOut,
		"The CSV file to write TM-scores to.")
	flag.StringVar(&flagFoldseekPath, "foldseek_path", flagFoldseekPath,
		"The foldseek executable. By default it is looked up in PATH.")

	util.FlagUse("pdb_dir", "tmp_dir", "verbose")
	util.FlagParse("",
		"Computes the TM-score of every binder in a directory against a\n"+
			"reference structure with foldseek.")
	util.AssertNArg(0)
	util.AssertFlag("pdb_dir", util.FlagPdbDir)
	util.AssertFlag("reference_pdb", flagReference)
	util.AssertFlag("out", flagOut)
}

func main() {
	util.AssertIsDir(util.FlagPdbDir)
	util.AssertIsFile(flagReference)

	// Interrupting kills foldseek and still removes the work directory.
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf := foldseek.DefaultConfig
	conf.Exec = flagFoldseekPath
	conf.TmpDir = util.FlagTmpDir
	conf.Verbose = util.FlagVerbose
	conf.Vomit = util.FlagVerbose

	hits, err := conf.Search(ctx, flagReference, util.FlagPdbDir)
	if err != nil {
		stop()
		util.Assert(err, "Could not score '%s' against '%s'",
			util.FlagPdbDir, flagReference)
	}

	binders := foldseek.Binders(hits, foldseek.BinderChain)
	util.Verbosef("%d alignments, %d against chain %s of a target.",
		len(hits), len(binders), foldseek.BinderChain)
	if len(binders) == 0 {
		util.Warnf("WARNING: no structure in '%s' has a chain %s aligned to "+
			"'%s'.", util.FlagPdbDir, foldseek.BinderChain, flagReference)
	}

	tab := table.New("name", "tm_score")
	for _, score := range binders {
		err := tab.Append(table.Row{
			"name":     score.Name,
			"tm_score": strconv.FormatFloat(score.TMScore, 'f', -1, 64),
		})
		util.Assert(err)
	}
	fmt.Print(tab)

	util.Assert(tab.WriteFile(flagOut), "Could not write CSV file '%s'", flagOut)
	fmt.Printf("Wrote TM-scores against %s to %s\n", flagReference, flagOut)
}
