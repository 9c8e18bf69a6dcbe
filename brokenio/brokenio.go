// brokenio is a wrapper around an io.ReadCloser. It lets us make reads
// fail, either after a given number of bytes or at random.
// Typical use: You get a file pointer or some other reader. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything
// then works as before, until the artificial error arrives.
// Once a reader has failed, it keeps failing.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrInjected is what a broken read returns.
var ErrInjected = errors.New("brokenio: injected read failure")

// A BrknRdrClsr is modelled on the Readers in the standard library,
// but with variables controlling when reads fail.
// If verbose is true, print out the amount of data when the file is closed.
type BrknRdrClsr struct {
	rdr_orig  io.ReadCloser // Wrapped reader
	rnd       *rand.Rand
	probFail  float32 // Probability that any one read fails
	failAfter int     // Fail once this many bytes are delivered. -1 means never
	failed    bool
	nCalled   int
	nByte     int
	verbose   bool
}

// dfltReader sets default values for a new brokenio reader.
var dfltReader = BrknRdrClsr{
	probFail:  0,
	failAfter: -1,
	verbose:   false,
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetProbFail sets the probability of a read failing.
// It must be between zero and 1. We do not check.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes reads fail once n bytes have gone through.
// Reads are shortened so exactly n bytes are delivered first.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// SetSeed makes random failures reproducible.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// NBytes says how much data has gone through so far.
func (r *BrknRdrClsr) NBytes() int { return r.nByte }

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	var rOut = dfltReader
	rOut.rdr_orig = rIn
	rOut.rnd = rand.New(rand.NewSource(1))
	return &rOut
}

// Read passes calls to the original reader and sums up the amount of
// data that has gone through, until it is time to fail.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.failed {
		return 0, ErrInjected
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			r.failed = true
			return 0, ErrInjected
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		r.failed = true
		return 0, ErrInjected
	}
	n, err = r.rdr_orig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdr_orig.Close()
}
