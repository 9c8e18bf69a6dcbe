// 11 Aug 2025

/*
Prefixhdr adds an identifying string to the start of every header in a
fasta file.

Usage:
	prefixhdr input_fasta user_string

Every line starting with ">" gets user_string and an underscore after the
">", so with user_string "gvag"
	>WP_004133218.1 hypothetical protein
becomes
	>gvag_WP_004133218.1 hypothetical protein
All other lines are copied unchanged.

This is for building multi-organism metabolic models, where the NCBI
header layout matters, but the same protein name from different
organisms would clash. user_string should identify the species and
should not contain spaces or special characters. Nothing checks this.

The output name comes from input_fasta by dropping the last extension and
adding "_edit.fasta", so
	Data/gardnerella_vaginalis_prots.faa
is written to
	Data/gardnerella_vaginalis_prots_edit.fasta
An existing file of that name is overwritten.

Running the program on its own output adds the string a second time.

Exit status is 0 on success, 1 if reading or writing failed and 2 for
a usage error. Set PREFIXHDR_LOG=debug or info to see what happened.
*/
package main
