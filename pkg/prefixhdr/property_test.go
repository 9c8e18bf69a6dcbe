package prefixhdr_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	. "github.com/andrew-torda/prefixhdr/pkg/prefixhdr"
)

// genLine makes header lines, sequence lines, blank lines and lines
// that only look like headers after white space.
func genLine() gopter.Gen {
	return gen.OneGenOf(
		gen.AlphaString().Map(func(s string) string { return ">" + s }),
		gen.AlphaString().Map(func(s string) string { return ">" + s + " [" + s + "]" }),
		gen.AlphaString(),
		gen.Const(""),
		gen.AlphaString().Map(func(s string) string { return " >" + s }),
	)
}

// joinLines gives every line a newline, so zero lines is an empty file.
func joinLines(lines []string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func rewrite(in, ident string) (string, Tally, error) {
	var out bytes.Buffer
	tally, err := Rewrite(&out, strings.NewReader(in), ident)
	return out.String(), tally, err
}

func TestRewriteProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("line count does not change", prop.ForAll(
		func(lines []string, ident string) bool {
			out, tally, err := rewrite(joinLines(lines), ident)
			return err == nil && len(splitLines(out)) == len(lines) && tally.Lines == len(lines)
		},
		gen.SliceOf(genLine()),
		gen.Identifier(),
	))

	properties.Property("each line is copied or prefixed in place", prop.ForAll(
		func(lines []string, ident string) bool {
			out, _, err := rewrite(joinLines(lines), ident)
			if err != nil {
				return false
			}
			got := splitLines(out)
			if len(got) != len(lines) {
				return false
			}
			for i, l := range lines {
				want := l
				if strings.HasPrefix(l, ">") {
					want = ">" + ident + "_" + l[1:]
				}
				if got[i] != want {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genLine()),
		gen.Identifier(),
	))

	properties.Property("a second run prefixes twice", prop.ForAll(
		func(lines []string, ident string) bool {
			in := joinLines(lines)
			once, _, err1 := rewrite(in, ident)
			twice, _, err2 := rewrite(once, ident)
			if err1 != nil || err2 != nil {
				return false
			}
			got := splitLines(twice)
			for i, l := range lines {
				if strings.HasPrefix(l, ">") && got[i] != ">"+ident+"_"+ident+"_"+l[1:] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genLine()),
		gen.Identifier(),
	))

	properties.Property("header count matches tally", prop.ForAll(
		func(lines []string, ident string) bool {
			out, tally, err := rewrite(joinLines(lines), ident)
			if err != nil {
				return false
			}
			n := 0
			for _, l := range splitLines(out) {
				if strings.HasPrefix(l, ">"+ident+"_") {
					n++
				}
			}
			return n == tally.Headers
		},
		gen.SliceOf(genLine()),
		gen.Identifier(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
