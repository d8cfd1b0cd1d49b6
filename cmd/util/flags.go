package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
)

var (
	FlagPdbDir  = ""
	FlagTmpDir  = ""
	FlagVerbose = false
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"pdb_dir": {
		set: func() {
			flag.StringVar(&FlagPdbDir, "pdb_dir", FlagPdbDir,
				"The directory containing the PDB files to process.\n"+
					"Files ending in '.pdb' or '.pdb.gz' are read; "+
					"subdirectories are not searched.")
		},
	},
	"tmp_dir": {
		set: func() {
			flag.StringVar(&FlagTmpDir, "tmp_dir", FlagTmpDir,
				"The directory in which temporary work directories are made.\n"+
					"When empty, the system's temporary directory is used.")
		},
		init: func() {
			if len(FlagTmpDir) > 0 {
				AssertIsDir(FlagTmpDir)
			}
		},
	},
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, progress and the commands run are printed to "+
					"stderr.")
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
