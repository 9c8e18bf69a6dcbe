// 3 Aug 2020
// 12 Aug 2025 count header lines, not every ">"

// Package numseq counts the header lines in a fasta file. A header
// is a line with ">" in the first column. A ">" anywhere else, for
// example after leading white space, does not count.
package numseq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	. "github.com/andrew-torda/prefixhdr/pkg/seq/common"
)

var nlHdr = []byte{'\n', HdrChar}

// countBuf counts headers in a complete buffer.
func countBuf(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n := bytes.Count(b, nlHdr)
	if b[0] == HdrChar {
		n++
	}
	return n
}

// CountHeaders maps fname read-only and counts header lines.
// mmap refuses zero length files, so these are handled before mapping.
// Pipes and devices cannot be mapped and are read as a stream instead.
func CountHeaders(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return 0, err
	}
	if !fi.Mode().IsRegular() {
		return CountHeadersReader(fp)
	}
	if fi.Size() == 0 {
		return 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, fmt.Errorf("mapping %s: %w", fname, err)
	}
	n := countBuf(mm)
	if err := mm.Unmap(); err != nil {
		return n, fmt.Errorf("unmapping %s: %w", fname, err)
	}
	return n, nil
}

// CountHeadersReader does the same job as CountHeaders, but on a stream.
// Lines can be any length, so we only look at the first byte of each
// and let the reader skip the rest.
func CountHeadersReader(r io.Reader) (int, error) {
	const bsize = 64 * 1024
	rdr := bufio.NewReaderSize(r, bsize)
	n := 0
	atStart := true
	for {
		line, err := rdr.ReadSlice('\n')
		if len(line) > 0 {
			if atStart && line[0] == HdrChar {
				n++
			}
			atStart = line[len(line)-1] == '\n'
		}
		switch err {
		case nil, bufio.ErrBufferFull:
			continue
		case io.EOF:
			return n, nil
		default:
			return n, err
		}
	}
}
