/*
run-structural-scoring computes the TM-score of every structure in a directory
against a reference structure using foldseek, which must be installed
separately.

Usage:
	run-structural-scoring -pdb_dir designs/ -reference_pdb egf.pdb \
		-out tm_scores.csv [-foldseek_path foldseek] [-tmp_dir /scratch]

foldseek builds one database for the reference and one for the directory,
then aligns every pair exhaustively with TM-align. Only alignments against
chain A of a target, the binder chain by convention, are kept. The chain
suffix is stripped from the target name so that "design_7_A" is reported as
"design_7".

The scores are printed and written to the output CSV file:

	name,tm_score
	design_7,0.9123

Intermediate databases are written to a new directory inside -tmp_dir (the
system's temporary directory by default). It is removed when the program
exits, including after a foldseek failure or an interrupt. A foldseek failure
is fatal and is not retried.
*/
package main
