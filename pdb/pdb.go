package pdb

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrChainNotFound is returned (possibly wrapped) whenever a chain identifier
// cannot be found in a structure. Use errors.Is to test for it.
var ErrChainNotFound = errors.New("chain not found")

// Entry represents all information known about a particular PDB file (that
// has been implemented in this package).
//
// An entry owns its models, which own their chains, which own their residues,
// which own their atoms. Every value also keeps a pointer back to its parent.
type Entry struct {
	Path   string
	Models []*Model
}

// Model is a single MODEL of a PDB entry. Files without MODEL records have
// exactly one model.
type Model struct {
	Entry  *Entry
	Num    int
	Chains []*Chain
}

// Chain represents a protein chain or subunit in a PDB file. Residues are kept
// in the order they were read.
type Chain struct {
	Model    *Model
	Ident    string
	Residues []*Residue
}

// Residue is a single monomer of a chain. SequenceNum, InsertionCode and Het
// together identify a residue within its chain.
type Residue struct {
	Chain         *Chain
	Name          string
	SequenceNum   int
	InsertionCode byte
	Het           bool
	Atoms         []*Atom
}

// Atom corresponds to an ATOM or HETATM record. The fields besides Name and
// Coords are only kept so that the atom can be written back out.
type Atom struct {
	Residue *Residue
	Serial  int
	Name    string

	// FullName is the raw four column atom name, including alignment spaces.
	FullName  string
	AltLoc    byte
	Occupancy float64
	BFactor   float64
	SegID     string
	Element   string
	Charge    string
	Coords
}

// Coords is a point in three dimensional space, in angstroms.
type Coords struct {
	X, Y, Z float64
}

// Dist2 returns the squared Euclidean distance between c and o.
func (c Coords) Dist2(o Coords) float64 {
	dx, dy, dz := c.X-o.X, c.Y-o.Y, c.Z-o.Z
	return dx*dx + dy*dy + dz*dz
}

// Name returns the base name of the entry's file without any ".gz" suffix
// and without its extension. i.e., "/data/1abc.pdb.gz" becomes "1abc".
func (e *Entry) Name() string {
	return BaseName(e.Path)
}

// BaseName strips the directory, a trailing ".gz" and the file extension
// from a structure file path.
func BaseName(fpath string) string {
	name := strings.TrimSuffix(path.Base(fpath), ".gz")
	return strings.TrimSuffix(name, path.Ext(name))
}

// FirstModel returns the first model of the entry, or nil if the entry has
// no atoms at all.
func (e *Entry) FirstModel() *Model {
	if len(e.Models) == 0 {
		return nil
	}
	return e.Models[0]
}

// FirstChain returns the first chain with the given identifier in the first
// model. If no such chain exists, the error returned wraps ErrChainNotFound.
func (e *Entry) FirstChain(ident string) (*Chain, error) {
	if m := e.FirstModel(); m != nil {
		if chain := m.Chain(ident); chain != nil {
			return chain, nil
		}
	}
	return nil, fmt.Errorf("%w: chain '%s' in '%s'",
		ErrChainNotFound, ident, e.Path)
}

// Chain returns the first chain in the model with the given identifier.
// If such a chain does not exist, nil is returned.
func (m *Model) Chain(ident string) *Chain {
	for _, chain := range m.Chains {
		if chain.Ident == ident {
			return chain
		}
	}
	return nil
}

// ChainIdents returns the chain identifiers of the model in file order.
func (m *Model) ChainIdents() []string {
	idents := make([]string, len(m.Chains))
	for i, chain := range m.Chains {
		idents[i] = chain.Ident
	}
	return idents
}

// Atoms returns every atom of the chain in residue order.
func (c *Chain) Atoms() []*Atom {
	n := 0
	for _, r := range c.Residues {
		n += len(r.Atoms)
	}
	atoms := make([]*Atom, 0, n)
	for _, r := range c.Residues {
		atoms = append(atoms, r.Atoms...)
	}
	return atoms
}

// CaAtoms returns the coordinates of every alpha-carbon of the chain in
// residue order. Hetero residues are skipped.
func (c *Chain) CaAtoms() []Coords {
	cas := make([]Coords, 0, len(c.Residues))
	for _, r := range c.Residues {
		if r.Het {
			continue
		}
		if atom := r.Atom("CA"); atom != nil {
			cas = append(cas, atom.Coords)
		}
	}
	return cas
}

// Reindex renumbers the residues of the chain to 1, 2, ..., N in their
// current order and clears insertion codes. Reindexing a chain that is
// already numbered this way leaves it unchanged.
func (c *Chain) Reindex() {
	for i, r := range c.Residues {
		r.SequenceNum = i + 1
		r.InsertionCode = ' '
	}
}

// String returns a short one line description of the chain.
func (c *Chain) String() string {
	natoms := 0
	for _, r := range c.Residues {
		natoms += len(r.Atoms)
	}
	return fmt.Sprintf("Chain %s :: %d residues, %d atoms",
		c.Ident, len(c.Residues), natoms)
}

// Atom returns the atom of the residue with the given name, or nil.
func (r *Residue) Atom(name string) *Atom {
	for _, atom := range r.Atoms {
		if atom.Name == name {
			return atom
		}
	}
	return nil
}

// Ident returns the residue identifier used in output files: the chain
// identifier followed by the sequence number. i.e., "A42".
func (r *Residue) Ident() string {
	return fmt.Sprintf("%s%d", r.Chain.Ident, r.SequenceNum)
}
