package contact

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hoyinchu/egfr-competition-analysis/pdb"
	"github.com/hoyinchu/egfr-competition-analysis/table"
)

// Columns of the table produced by Scanner.Dir.
const (
	ColName    = "name"
	ColChainA  = "Chain_A_interface_residues"
	ColChainB  = "Chain_B_interface_residues"
	pdbExt     = ".pdb"
	pdbExtGzip = ".pdb.gz"
)

// Scanner runs Find over every PDB file in a directory, one file at a time.
type Scanner struct {
	ChainA, ChainB string
	Cutoff         float64

	// Log receives progress messages and warnings about skipped files.
	// When nil, nothing is logged.
	Log *log.Logger
}

// DefaultScanner uses chains A and B and the default cutoff.
var DefaultScanner = Scanner{
	ChainA: "A",
	ChainB: "B",
	Cutoff: DefaultCutoff,
}

func (s Scanner) logger() *log.Logger {
	if s.Log == nil {
		return log.New(io.Discard, "", 0)
	}
	return s.Log
}

// Files returns the paths of the PDB files (".pdb" or ".pdb.gz") directly
// inside dir, in lexical order. Subdirectories are not searched.
func Files(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, ent := range ents {
		name := ent.Name()
		if ent.IsDir() {
			continue
		}
		if strings.HasSuffix(name, pdbExt) || strings.HasSuffix(name, pdbExtGzip) {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Dir processes every PDB file in dir and returns one row per file with the
// interface residues of both chains. Files where either chain is missing, or
// that cannot be read, are skipped with a warning.
//
// An error is only returned if the directory itself cannot be read. An empty
// table means there was nothing to report.
func (s Scanner) Dir(dir string) (*table.Table, error) {
	files, err := Files(dir)
	if err != nil {
		return nil, err
	}
	return s.ScanFiles(files), nil
}

// ScanFiles is like Dir, but processes the given files in order.
func (s Scanner) ScanFiles(files []string) *table.Table {
	lg := s.logger()
	tab := table.New(ColName, ColChainA, ColChainB)
	for i, fpath := range files {
		lg.Printf("Processing %s (%d/%d)", fpath, i+1, len(files))
		row, err := s.File(fpath)
		if err != nil {
			if errors.Is(err, pdb.ErrChainNotFound) {
				lg.Printf("Warning: chains %s or %s not found in %s",
					s.ChainA, s.ChainB, fpath)
			} else {
				lg.Printf("Warning: skipping %s: %s", fpath, err)
			}
			continue
		}
		if err := tab.Append(row); err != nil {
			// Rows are built here with the table's own columns.
			panic(err)
		}
	}
	return tab
}

// File reads a single PDB file and returns its table row. The first model
// of the file is used.
func (s Scanner) File(fpath string) (table.Row, error) {
	entry, err := pdb.ReadPDB(fpath)
	if err != nil {
		return nil, err
	}
	m := entry.FirstModel()
	if m == nil {
		return nil, fmt.Errorf("%w: '%s' has no atoms",
			pdb.ErrChainNotFound, fpath)
	}
	inA, inB, err := FindInModel(m, s.ChainA, s.ChainB, s.Cutoff)
	if err != nil {
		return nil, err
	}
	return table.Row{
		ColName:   entry.Name(),
		ColChainA: inA.Tokens(s.ChainA),
		ColChainB: inB.Tokens(s.ChainB),
	}, nil
}
