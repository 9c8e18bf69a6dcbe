package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/prefixhdr/pkg/seq/common"
)

const seqs = ">protein1 description\nMKVL\n>protein2 description\nMKAA\n"

func TestMain1(t *testing.T) {
	t.Setenv("PREFIXHDR_LOG", "")
	infile := filepath.Join(t.TempDir(), "organism.faa")
	require.NoError(t, os.WriteFile(infile, []byte(seqs), 0o644))
	var stderr bytes.Buffer
	require.Equal(t, ExitSuccess, mymain("prefixhdr", []string{infile, "ecoli"}, &stderr))
	b, err := os.ReadFile(filepath.Join(filepath.Dir(infile), "organism_edit.fasta"))
	require.NoError(t, err)
	assert.Equal(t, ">ecoli_protein1 description\nMKVL\n>ecoli_protein2 description\nMKAA\n", string(b))
	assert.Empty(t, stderr.String(), "a normal run is silent")
}

// TestMissingIdent: with only one argument, nothing is written.
func TestMissingIdent(t *testing.T) {
	infile := filepath.Join(t.TempDir(), "organism.faa")
	require.NoError(t, os.WriteFile(infile, []byte(seqs), 0o644))
	var stderr bytes.Buffer
	assert.Equal(t, ExitUsageError, mymain("prefixhdr", []string{infile}, &stderr))
	assert.Contains(t, stderr.String(), "usage: prefixhdr")
	_, err := os.Stat(filepath.Join(filepath.Dir(infile), "organism_edit.fasta"))
	assert.True(t, os.IsNotExist(err), "output should not exist")
}

func TestArgCounts(t *testing.T) {
	for _, args := range [][]string{nil, {"a.faa", "b", "c"}} {
		var stderr bytes.Buffer
		assert.Equal(t, ExitUsageError, mymain("prefixhdr", args, &stderr), "args %q", args)
	}
}

func TestMissingInput(t *testing.T) {
	t.Setenv("PREFIXHDR_LOG", "")
	infile := filepath.Join(t.TempDir(), "nothere.faa")
	var stderr bytes.Buffer
	assert.Equal(t, ExitFailure, mymain("prefixhdr", []string{infile, "ecoli"}, &stderr))
	assert.Contains(t, stderr.String(), "nothere.faa")
}

func TestHelp(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, ExitSuccess, mymain("prefixhdr", []string{"-h"}, &stderr))
	assert.Contains(t, stderr.String(), "usage: prefixhdr")
}
