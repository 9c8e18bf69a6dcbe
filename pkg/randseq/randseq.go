// 31 July 2020
// 12 Aug 2025 reproducible output, sequences wrapped over lines

// Package randseq writes random protein sequences in fasta format.
// It is for making test data, so the same seed always gives the same file.
package randseq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
)

const dfltWidth = 60 // residues per line, if nobody says otherwise

var letters = []byte{'a', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'w', 'y'}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	Width int       // line width. Zero means dfltWidth
}

// getseq fills s with random residues.
func getseq(s []byte, rnd *rand.Rand) {
	for i := range s {
		s[i] = letters[rnd.Intn(len(letters))]
	}
}

// writeseq writes one record. n is the number of the sequence, so the
// output has comment lines ">something 1", ">something 2"...
func writeseq(w *bufio.Writer, cmmt string, n, width int, s []byte) error {
	if _, err := fmt.Fprintf(w, ">%s %d\n", cmmt, n); err != nil {
		return err
	}
	for ; len(s) > width; s = s[width:] {
		w.Write(s[:width])
		w.WriteByte('\n')
	}
	w.Write(s)
	return w.WriteByte('\n')
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Wrtr == nil {
		return errors.New("randseq: no writer")
	}
	if args.Nseq < 0 || args.Len < 0 {
		return fmt.Errorf("randseq: negative nseq %d or length %d", args.Nseq, args.Len)
	}
	width := args.Width
	if width <= 0 {
		width = dfltWidth
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	w := bufio.NewWriter(args.Wrtr)
	s := make([]byte, args.Len)
	for i := 1; i <= args.Nseq; i++ {
		getseq(s, rnd)
		if err := writeseq(w, args.Cmmt, i, width, s); err != nil {
			return err
		}
	}
	return w.Flush()
}
