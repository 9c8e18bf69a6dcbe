// 11 Aug 2025

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/andrew-torda/prefixhdr/pkg/logx"
	"github.com/andrew-torda/prefixhdr/pkg/prefixhdr"
	. "github.com/andrew-torda/prefixhdr/pkg/seq/common"
)

// mymain reads the command line and returns an exit code. Nothing is
// opened unless there are exactly two arguments.
func mymain(name string, args []string, stderr io.Writer) int {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(stderr)
	f.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s input_fasta user_string\n", name)
		f.PrintDefaults()
	}
	if err := f.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsageError
	}
	if f.NArg() != 2 {
		fmt.Fprintln(stderr, "Expected two arguments. Got", f.NArg())
		f.Usage()
		return ExitUsageError
	}
	logger := logx.New(stderr, name)
	return prefixhdr.MyMain(f.Arg(0), f.Arg(1), logger)
}

func main() {
	os.Exit(mymain(path.Base(os.Args[0]), os.Args[1:], os.Stderr))
}
