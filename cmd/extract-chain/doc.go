/*
extract-chain reads a PDB file, finds the first chain with the given identifier
in its first model, renumbers the residues of that chain 1, 2, ..., N in file
order and writes only that chain to a new PDB file. Insertion codes are
cleared and atom serial numbers start again from 1.

A PDB file may either be plain text or compressed using the Lempel-Ziv coding
(i.e., gzip). If the PDB file is gzipped, it must end with a '.gz' extension.
The output is always plain text.

Usage:
	extract-chain -pdb complex.pdb -chain A -output binder.pdb

The program quits with an error if the input file cannot be read or if it has
no chain with the given identifier.
*/
package main
