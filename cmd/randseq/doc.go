// 31 July 2020

/*

Randseq makes random protein sequences in fasta format, for testing
prefixhdr and for benchmarks.
Usage:
	randseq [options] fname nseq length
will generate nseq sequences of length length and write them to fname.
If fname is "-", write to stdout.

Flags:
	-c
		comment for each sequence. Headers look like ">comment 1".
	-r
		random number seed. The same seed gives the same file.
	-w
		residues per line (default 60)

Set PREFIXHDR_LOG=debug to see what was written.
*/
package main
