package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError is returned when a coordinate record cannot be read. It keeps
// the line number and the offending line.
type ParseError struct {
	Path string
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s (line starting with '%s')",
		e.Path, e.Line, e.Msg, firstPart(e.Text))
}

func firstPart(s string) string {
	const maxLen = 30
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

// ReadPDB reads a PDB entry from a file. If the file cannot be read, or there
// is an error parsing the PDB file, an error is returned.
//
// If the file name ends with ".gz", gzip decompression will be used.
func ReadPDB(fileName string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(fileName, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", fileName, err)
		}
		defer gz.Close()
		reader = gz
	}
	return Read(reader, fileName)
}

// Read reads ATOM, HETATM, MODEL and ENDMDL records from r. All other records
// are ignored. The path is only used to fill in Entry.Path and error
// messages.
func Read(r io.Reader, fpath string) (*Entry, error) {
	p := &parser{
		entry:    &Entry{Path: fpath},
		residues: make(map[*Chain]map[resKey]*Residue),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	for scanner.Scan() {
		p.lineno++
		line := scanner.Text()

		// The record name is always in the first six columns.
		switch strings.TrimSpace(field(line, 0, 6)) {
		case "MODEL":
			p.startModel(line)
		case "ENDMDL":
			p.model = nil
		case "ATOM":
			if err := p.parseAtom(line, false); err != nil {
				return nil, err
			}
		case "HETATM":
			if err := p.parseAtom(line, true); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %s", fpath, err)
	}
	return p.entry, nil
}

type resKey struct {
	het   bool
	num   int
	icode byte
}

type parser struct {
	entry    *Entry
	model    *Model
	lineno   int
	residues map[*Chain]map[resKey]*Residue
}

func (p *parser) errorf(line string, format string, v ...interface{}) error {
	return &ParseError{
		Path: p.entry.Path,
		Line: p.lineno,
		Text: line,
		Msg:  fmt.Sprintf(format, v...),
	}
}

// startModel begins a new model. A MODEL record that follows an implicit
// model without any atoms reuses it.
func (p *parser) startModel(line string) {
	num, err := strconv.Atoi(strings.TrimSpace(field(line, 10, 14)))
	if err != nil {
		num = len(p.entry.Models) + 1
	}
	if p.model != nil && len(p.model.Chains) == 0 {
		p.model.Num = num
		return
	}
	p.model = &Model{Entry: p.entry, Num: num}
	p.entry.Models = append(p.entry.Models, p.model)
}

func (p *parser) getOrMakeModel() *Model {
	if p.model == nil {
		p.model = &Model{Entry: p.entry, Num: len(p.entry.Models) + 1}
		p.entry.Models = append(p.entry.Models, p.model)
	}
	return p.model
}

func (p *parser) getOrMakeChain(ident string) *Chain {
	m := p.getOrMakeModel()
	if chain := m.Chain(ident); chain != nil {
		return chain
	}
	chain := &Chain{Model: m, Ident: ident}
	m.Chains = append(m.Chains, chain)
	p.residues[chain] = make(map[resKey]*Residue)
	return chain
}

// getOrMakeResidue finds the residue identified by key in the chain. The last
// residue is checked first since atoms of one residue are almost always
// contiguous.
func (p *parser) getOrMakeResidue(chain *Chain, key resKey,
	name string) *Residue {

	if n := len(chain.Residues); n > 0 {
		last := chain.Residues[n-1]
		if last.Het == key.het && last.SequenceNum == key.num &&
			last.InsertionCode == key.icode {
			return last
		}
	}
	if r, ok := p.residues[chain][key]; ok {
		return r
	}
	r := &Residue{
		Chain:         chain,
		Name:          name,
		SequenceNum:   key.num,
		InsertionCode: key.icode,
		Het:           key.het,
	}
	chain.Residues = append(chain.Residues, r)
	p.residues[chain][key] = r
	return r
}

// parseAtom loads an ATOM or HETATM record. Columns follow the wwPDB format
// description, version 3.3.
func (p *parser) parseAtom(line string, het bool) error {
	if len(line) < 54 {
		return p.errorf(line, "coordinate record has %d columns, expected "+
			"at least 54", len(line))
	}

	resnum, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return p.errorf(line, "bad residue sequence number '%s'", line[22:26])
	}
	var xyz [3]float64
	for i := range xyz {
		s := strings.TrimSpace(line[30+8*i : 38+8*i])
		if xyz[i], err = strconv.ParseFloat(s, 64); err != nil {
			return p.errorf(line, "bad coordinate '%s'", s)
		}
	}

	atom := &Atom{
		Name:      strings.TrimSpace(line[12:16]),
		FullName:  line[12:16],
		AltLoc:    line[16],
		Occupancy: 1.0,
		SegID:     strings.TrimSpace(field(line, 72, 76)),
		Element:   strings.TrimSpace(field(line, 76, 78)),
		Charge:    strings.TrimSpace(field(line, 78, 80)),
		Coords:    Coords{xyz[0], xyz[1], xyz[2]},
	}
	// Serial numbers beyond 99999 are often hybrid-36 encoded. They are
	// renumbered on output anyway, so a bad one is not fatal.
	atom.Serial, _ = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if s := strings.TrimSpace(field(line, 54, 60)); len(s) > 0 {
		if atom.Occupancy, err = strconv.ParseFloat(s, 64); err != nil {
			return p.errorf(line, "bad occupancy '%s'", s)
		}
	}
	if s := strings.TrimSpace(field(line, 60, 66)); len(s) > 0 {
		if atom.BFactor, err = strconv.ParseFloat(s, 64); err != nil {
			return p.errorf(line, "bad temperature factor '%s'", s)
		}
	}

	chain := p.getOrMakeChain(line[21:22])
	key := resKey{het: het, num: resnum, icode: line[26]}
	residue := p.getOrMakeResidue(chain, key, strings.TrimSpace(line[17:20]))
	atom.Residue = residue

	// Only one alternate location is kept per atom name: the one with the
	// highest occupancy, or the first one seen on ties.
	if old := residue.Atom(atom.Name); old != nil {
		if atom.Occupancy > old.Occupancy {
			*old = *atom
		}
		return nil
	}
	residue.Atoms = append(residue.Atoms, atom)
	return nil
}

// field returns line[start:end], clipped to the length of the line.
func field(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}
