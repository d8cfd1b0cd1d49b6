// Package pdbtest builds small PDB files and structures for tests.
package pdbtest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hoyinchu/egfr-competition-analysis/pdb"
)

// Atom describes a single ATOM or HETATM record. Zero values give sensible
// defaults: a CA atom of an alanine with occupancy 1.
type Atom struct {
	Het       bool
	Name      string
	AltLoc    byte
	ResName   string
	Chain     string
	ResNum    int
	ICode     byte
	X, Y, Z   float64
	Occupancy float64
	BFactor   float64
	Element   string
}

// Line renders a as a fixed column coordinate record.
func Line(serial int, a Atom) string {
	record := "ATOM  "
	if a.Het {
		record = "HETATM"
	}
	name, resName, element := a.Name, a.ResName, a.Element
	if name == "" {
		name = "CA"
	}
	if resName == "" {
		resName = "ALA"
	}
	if element == "" {
		element = name[:1]
	}
	if len(name) < 4 {
		name = " " + name
	}
	occ := a.Occupancy
	if occ == 0 {
		occ = 1
	}
	return fmt.Sprintf("%s%5d %-4s%c%3s %c%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f"+
		"          %2s  ",
		record, serial, name, orSpace(a.AltLoc), resName, chainByte(a.Chain),
		a.ResNum, orSpace(a.ICode), a.X, a.Y, a.Z, occ, a.BFactor, element)
}

// File renders all atoms, in order, as the contents of a PDB file.
func File(atoms ...Atom) string {
	var b strings.Builder
	b.WriteString("HEADER    TEST STRUCTURE\n")
	for i, a := range atoms {
		b.WriteString(Line(i+1, a))
		b.WriteByte('\n')
	}
	b.WriteString("END\n")
	return b.String()
}

// Write writes contents to dir/name and returns the full path.
func Write(tb testing.TB, dir, name, contents string) string {
	tb.Helper()
	fpath := filepath.Join(dir, name)
	if err := os.WriteFile(fpath, []byte(contents), 0644); err != nil {
		tb.Fatalf("Could not write '%s': %s", fpath, err)
	}
	return fpath
}

// Entry parses the given atoms into a PDB entry named "test.pdb".
func Entry(tb testing.TB, atoms ...Atom) *pdb.Entry {
	tb.Helper()
	entry, err := pdb.Read(strings.NewReader(File(atoms...)), "test.pdb")
	if err != nil {
		tb.Fatalf("Could not parse test structure: %s", err)
	}
	return entry
}

// Chain returns the chain with the given identifier in the first model of
// entry, failing the test if there is none.
func Chain(tb testing.TB, entry *pdb.Entry, ident string) *pdb.Chain {
	tb.Helper()
	chain, err := entry.FirstChain(ident)
	if err != nil {
		tb.Fatal(err)
	}
	return chain
}

func orSpace(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}

func chainByte(ident string) byte {
	if len(ident) == 0 {
		return 'A'
	}
	return ident[0]
}
