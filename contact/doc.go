/*
Package contact finds interface residues between two chains of a structure.

A residue of chain A is an interface residue if at least one of its atoms is
within a distance cutoff of some atom of chain B, and vice versa. A single
qualifying atom pair is enough to mark both residues.

Find uses a k-d tree (gonum.org/v1/gonum/spatial/kdtree) over the atoms of
both chains. FindBrute checks every pair of atoms and is kept as a reference.

Scanner applies Find to each PDB file of a directory and collects one table
row per file, with residues written as chain-prefixed numbers:

	tab, err := contact.DefaultScanner.Dir("designs/")
	...
	err = tab.WriteFile("contact_residues_summary.csv")
*/
package contact
