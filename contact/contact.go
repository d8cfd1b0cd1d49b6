package contact

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/hoyinchu/egfr-competition-analysis/pdb"
)

// DefaultCutoff is the contact distance, in angstroms, used by the command
// line tools when none is given.
const DefaultCutoff = 4.0

var (
	// ErrCutoff is returned when the distance cutoff is not a positive number.
	ErrCutoff = errors.New("distance cutoff must be positive")

	// ErrChains is returned when the two chains given are the same chain or
	// when one of them has no atoms.
	ErrChains = errors.New("need two distinct chains with at least one atom")
)

// Residues is a set of residue sequence numbers.
type Residues map[int]struct{}

// Add puts the residue number n in the set.
func (rs Residues) Add(n int) {
	rs[n] = struct{}{}
}

// Has returns whether the residue number n is in the set.
func (rs Residues) Has(n int) bool {
	_, ok := rs[n]
	return ok
}

// Sorted returns the residue numbers in ascending order.
func (rs Residues) Sorted() []int {
	nums := make([]int, 0, len(rs))
	for n := range rs {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Tokens formats the set as comma separated residue identifiers prefixed
// with the chain identifier, in ascending order. i.e., "A3,A10,A11".
func (rs Residues) Tokens(chainID string) string {
	nums := rs.Sorted()
	toks := make([]string, len(nums))
	for i, n := range nums {
		toks[i] = chainID + strconv.Itoa(n)
	}
	return strings.Join(toks, ",")
}

// Find returns the residues of a and the residues of b that are in contact
// with the other chain. A residue is in contact when any one of its atoms is
// within cutoff (inclusive) of any atom of the other chain.
//
// A k-d tree is built over the atoms of both chains and queried once for
// every atom of a, so the typical cost is O((|a|+|b|) log(|a|+|b|)).
func Find(a, b *pdb.Chain, cutoff float64) (Residues, Residues, error) {
	atomsA, atomsB, err := checkArgs(a, b, cutoff)
	if err != nil {
		return nil, nil, err
	}

	all := make([]*pdb.Atom, 0, len(atomsA)+len(atomsB))
	all = append(all, atomsA...)
	all = append(all, atomsB...)
	ns := NewNeighborSearch(all)

	inA, inB := make(Residues), make(Residues)
	for _, atomA := range atomsA {
		for _, near := range ns.Search(atomA.Coords, cutoff) {
			if near.Residue.Chain != b {
				continue
			}
			inA.Add(atomA.Residue.SequenceNum)
			inB.Add(near.Residue.SequenceNum)
		}
	}
	return inA, inB, nil
}

// FindBrute has the same contract as Find, but compares every atom of a with
// every atom of b. It is O(|a|*|b|) and only suitable for small chains or as
// a reference to check Find against.
func FindBrute(a, b *pdb.Chain, cutoff float64) (Residues, Residues, error) {
	atomsA, atomsB, err := checkArgs(a, b, cutoff)
	if err != nil {
		return nil, nil, err
	}

	cutoff2 := cutoff * cutoff
	inA, inB := make(Residues), make(Residues)
	for _, atomA := range atomsA {
		for _, atomB := range atomsB {
			if atomA.Dist2(atomB.Coords) <= cutoff2 {
				inA.Add(atomA.Residue.SequenceNum)
				inB.Add(atomB.Residue.SequenceNum)
			}
		}
	}
	return inA, inB, nil
}

// FindInModel looks up the chains identified by idA and idB in the model and
// calls Find. If either chain is missing, the error returned wraps
// pdb.ErrChainNotFound.
func FindInModel(m *pdb.Model, idA, idB string,
	cutoff float64) (Residues, Residues, error) {

	a, b := m.Chain(idA), m.Chain(idB)
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("%w: chains '%s' or '%s' in '%s'",
			pdb.ErrChainNotFound, idA, idB, m.Entry.Path)
	}
	return Find(a, b, cutoff)
}

// CheckCutoff returns an error wrapping ErrCutoff unless cutoff is a positive
// finite number.
func CheckCutoff(cutoff float64) error {
	if !(cutoff > 0) || math.IsInf(cutoff, 1) {
		return fmt.Errorf("%w: %v", ErrCutoff, cutoff)
	}
	return nil
}

func checkArgs(a, b *pdb.Chain,
	cutoff float64) ([]*pdb.Atom, []*pdb.Atom, error) {

	if err := CheckCutoff(cutoff); err != nil {
		return nil, nil, err
	}
	if a == nil || b == nil || a == b {
		return nil, nil, ErrChains
	}
	atomsA, atomsB := a.Atoms(), b.Atoms()
	if len(atomsA) == 0 || len(atomsB) == 0 {
		return nil, nil, fmt.Errorf("%w: chain '%s' has %d atoms, "+
			"chain '%s' has %d atoms",
			ErrChains, a.Ident, len(atomsA), b.Ident, len(atomsB))
	}
	return atomsA, atomsB, nil
}
