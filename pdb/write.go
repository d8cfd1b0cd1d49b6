package pdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const (
	atomFormat = "%s%5d %-4s%c%3s %c%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f" +
		"      %-4s%2s%2s\n"
	terFormat = "TER   %5d      %3s %c%4d%c\n"
)

// WriteChain writes the atoms of a single chain as ATOM and HETATM records,
// followed by a TER and an END record. Atom serial numbers are assigned
// from 1 in the order written.
func WriteChain(w io.Writer, chain *Chain) error {
	buf := bufio.NewWriter(w)
	ident := chainByte(chain.Ident)

	serial := 0
	var last *Residue
	for _, r := range chain.Residues {
		record := "ATOM  "
		if r.Het {
			record = "HETATM"
		}
		for _, atom := range r.Atoms {
			serial++
			fmt.Fprintf(buf, atomFormat,
				record, serial%100000, atomName(atom), altLoc(atom.AltLoc),
				r.Name, ident, r.SequenceNum, icode(r.InsertionCode),
				atom.X, atom.Y, atom.Z, atom.Occupancy, atom.BFactor,
				atom.SegID, atom.Element, atom.Charge)
			last = r
		}
	}
	if last != nil {
		serial++
		fmt.Fprintf(buf, terFormat, serial%100000,
			last.Name, ident, last.SequenceNum, icode(last.InsertionCode))
	}
	if _, err := buf.WriteString("END\n"); err != nil {
		return err
	}
	return buf.Flush()
}

// WriteChainFile is like WriteChain, but creates (or truncates) the file at
// fpath first.
func WriteChainFile(fpath string, chain *Chain) error {
	f, err := os.Create(fpath)
	if err != nil {
		return err
	}
	if err := WriteChain(f, chain); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// atomName returns the four column atom name. Names read from a file are
// written back exactly. Otherwise, names of single letter elements start in
// column 14.
func atomName(atom *Atom) string {
	if len(atom.FullName) == 4 {
		return atom.FullName
	}
	if len(atom.Name) < 4 && len(atom.Element) <= 1 {
		return " " + atom.Name
	}
	return atom.Name
}

func chainByte(ident string) byte {
	if len(ident) == 0 {
		return ' '
	}
	return ident[0]
}

func altLoc(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}

func icode(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}
