// 31 July 2020

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andrew-torda/prefixhdr/pkg/logx"
	"github.com/andrew-torda/prefixhdr/pkg/randseq"
	. "github.com/andrew-torda/prefixhdr/pkg/seq/common"
)

// mymain reads the command line and returns an exit code.
// "-" as file name means stdout.
func mymain(cmdArgs []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet("randseq", flag.ContinueOnError)
	f.SetOutput(stderr)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs
	logger := logx.New(stderr, "randseq")

	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.IntVar(&args.Width, "w", 60, "residues per line")
	f.StringVar(&args.Cmmt, "c", "randseq", "comment for each sequence")
	if err := f.Parse(cmdArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsageError
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandseq [..] file nseq length")
		f.Usage()
		return ExitUsageError
	}

	const emsg = "failed converting to positive integer"
	if nseq, err := strconv.ParseUint(f.Arg(1), 10, 32); err != nil {
		logger.Error(emsg, "arg", f.Arg(1))
		return ExitUsageError
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Arg(2), 10, 32); err != nil {
		logger.Error(emsg, "arg", f.Arg(2))
		return ExitUsageError
	} else {
		args.Len = int(nlen)
	}

	fname := f.Arg(0)
	if fname == "-" || fname == "" {
		args.Wrtr = stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			logger.Error("file for output", "err", err)
			return ExitFailure
		}
		defer ft.Close()
		args.Wrtr = ft
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		logger.Error("writing sequences", "file", fname, "err", err)
		return ExitFailure
	}
	logger.Debug("wrote", "file", fname, "nseq", args.Nseq, "len", args.Len)
	return ExitSuccess
}

func main() {
	os.Exit(mymain(os.Args[1:], os.Stdout, os.Stderr))
}
