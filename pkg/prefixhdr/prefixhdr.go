// 11 Aug 2025

// Package prefixhdr puts an identifier in front of every header in a
// fasta file. Given
//
//	>WP_003240.1 enolase
//
// and the identifier "ecoli", the header becomes
//
//	>ecoli_WP_003240.1 enolase
//
// Everything that is not a header is copied without change. This is for
// merging proteomes from different organisms, where the same protein name
// would otherwise turn up more than once.
package prefixhdr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/prefixhdr/pkg/numseq"
	. "github.com/andrew-torda/prefixhdr/pkg/seq/common"
)

var (
	ErrNoIdent     = errors.New("identifier string is empty")
	ErrBadIdent    = errors.New("identifier string contains a line break")
	ErrHeaderCount = errors.New("header count mismatch")
)

// checkIdent rejects identifiers that would split a header over two
// lines. Anything else goes through, spaces and ">" included.
func checkIdent(ident string) error {
	if ident == "" {
		return ErrNoIdent
	}
	if strings.ContainsAny(ident, "\r\n") {
		return fmt.Errorf("%w: %q", ErrBadIdent, ident)
	}
	return nil
}

// outSuffix replaces the last extension of the input name.
const outSuffix = "_edit.fasta"

const bufSize = 64 * 1024

// Tally counts what went through Rewrite.
type Tally struct {
	Lines   int // all lines, including headers
	Headers int
}

// OutName makes the output filename from the input filename. Split on
// ".", drop the last piece and add "_edit.fasta". The directory part
// stays, so dir/foo.bar.faa becomes dir/foo.bar_edit.fasta. A name
// without any "." loses everything and becomes just "_edit.fasta".
func OutName(infile string) string {
	parts := strings.Split(infile, ".")
	return strings.Join(parts[:len(parts)-1], ".") + outSuffix
}

// trimEOL removes "\n" or "\r\n" from the end of a line.
func trimEOL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
		if n := len(b); n > 0 && b[n-1] == '\r' {
			b = b[:n-1]
		}
	}
	return b
}

// Rewrite reads src a line at a time and writes to dst. Header lines get
// ident and "_" after the ">" and always end with a plain newline. Other
// lines are written exactly as they came, so the last line keeps its
// missing newline if it had none. The first error from reading or
// writing stops everything.
func Rewrite(dst io.Writer, src io.Reader, ident string) (Tally, error) {
	var tally Tally
	rdr := bufio.NewReaderSize(src, bufSize)
	w := bufio.NewWriterSize(dst, bufSize)
	prefix := []byte(string(HdrChar) + ident + "_")
	for {
		line, rdErr := rdr.ReadBytes('\n')
		if rdErr != nil && rdErr != io.EOF {
			return tally, fmt.Errorf("reading line %d: %w", tally.Lines+1, rdErr)
		}
		if len(line) > 0 {
			tally.Lines++
			var err error
			if line[0] == HdrChar {
				tally.Headers++
				if _, err = w.Write(prefix); err == nil {
					if _, err = w.Write(trimEOL(line[1:])); err == nil {
						err = w.WriteByte('\n')
					}
				}
			} else {
				_, err = w.Write(line)
			}
			if err != nil {
				return tally, fmt.Errorf("writing line %d: %w", tally.Lines, err)
			}
		}
		if rdErr == io.EOF {
			break
		}
	}
	if err := w.Flush(); err != nil {
		return tally, fmt.Errorf("writing: %w", err)
	}
	return tally, nil
}

// RewriteFile does the whole job for one file and returns the name of the
// file it wrote. The input is opened first, so a missing input leaves no
// output behind. The output is written in place, not via a temporary
// file, so if something goes wrong, a partial file is left on disk.
func RewriteFile(infile, ident string) (outfile string, tally Tally, err error) {
	if err := checkIdent(ident); err != nil {
		return "", tally, err
	}
	fin, err := os.Open(infile)
	if err != nil {
		return "", tally, fmt.Errorf("input fasta: %w", err)
	}
	defer fin.Close()

	outfile = OutName(infile)
	fout, err := os.Create(outfile)
	if err != nil {
		return outfile, tally, fmt.Errorf("output fasta: %w", err)
	}
	tally, err = Rewrite(fout, fin, ident)
	if cerr := fout.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing %s: %w", outfile, cerr)
	}
	return outfile, tally, err
}

// CheckCounts reads the output back and makes sure it has as many
// headers as Rewrite wrote. The input is not looked at again. It may have
// been a pipe and is gone. An output that is not a regular file (a named
// pipe, /dev/stdout) cannot be read back either, so it is not checked.
func CheckCounts(outfile string, tally Tally) error {
	fi, err := os.Stat(outfile)
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return nil
	}
	nOut, err := numseq.CountHeaders(outfile)
	if err != nil {
		return err
	}
	if nOut != tally.Headers {
		const emsg = "%w: output %d, rewritten %d"
		return fmt.Errorf(emsg, ErrHeaderCount, nOut, tally.Headers)
	}
	return nil
}

// MyMain is the top level, after the command line has been read.
// It returns an exit code.
func MyMain(infile, ident string, logger *log.Logger) int {
	if err := checkIdent(ident); err != nil {
		logger.Error("bad identifier", "err", err)
		return ExitUsageError
	}
	outfile, tally, err := RewriteFile(infile, ident)
	if err != nil {
		logger.Error("rewriting headers", "infile", infile, "outfile", outfile, "err", err)
		return ExitFailure
	}
	logger.Debug("rewrote", "infile", infile, "outfile", outfile,
		"lines", tally.Lines, "headers", tally.Headers)

	if err := CheckCounts(outfile, tally); err != nil {
		logger.Error("checking output", "outfile", outfile, "err", err)
		return ExitFailure
	}
	logger.Info("done", "outfile", outfile, "headers", tally.Headers)
	return ExitSuccess
}
