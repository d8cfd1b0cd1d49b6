/*
Package foldseek provides a convenient wrapper for scoring structures against
a reference with foldseek (https://github.com/steineggerlab/foldseek).

Only the parts of foldseek needed to compute TM-scores are wrapped: a database
is built for the reference and for a directory of targets, and the two are
aligned exhaustively with TM-align. Options can be added on an as-needed
basis.

The foldseek binary is run as a child process and must be installed
separately. Its exit status is checked after every step and a failing step
aborts the search. Nothing is retried.
*/
package foldseek
