/*
identify-interface-residues finds the residues at the interface of two chains
in every PDB file of a directory. A residue of one chain is at the interface
if any of its atoms is within the distance cutoff of any atom of the other
chain. Only the first model of each file is used.

Usage:
	identify-interface-residues -pdb_dir designs/ [flags]

The directory is not searched recursively. Files ending in '.pdb' or '.pdb.gz'
are processed in lexical order and progress is printed for each one. A file
that does not have both chains, or that cannot be parsed, is skipped with a
warning.

The output CSV file has one row per processed file:

	name,Chain_A_interface_residues,Chain_B_interface_residues
	design_1,"A3,A10,A11","B7,B8"

where name is the file name without its extension. If there are no PDB files,
or every file was skipped, no CSV file is written.
*/
package main
