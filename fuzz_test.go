//go:build go1.18

package ofx_test

import (
	"os"
	"path/filepath"
	"testing"

	ofx "github.com/reactsoft/go-ofx"
	"github.com/stretchr/testify/require"
)

func FuzzParse(f *testing.F) {
	// Seed the corpus with valid OFX files from the testdata directory.
	seedFiles, err := filepath.Glob("testdata/*.ofx")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	// Simple but important edge cases.
	f.Add([]byte("<OFX></OFX>"))
	f.Add([]byte("<OFX>"))
	f.Add([]byte("<OFX><SIGNONMSGSRSV1></SIGNONMSGSRSV1></OFX>"))
	f.Add([]byte("<OFX><A B=c/></OFX>"))
	f.Add([]byte("no marker at all"))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Parse must never panic; returning an error on invalid tag soup
		// is expected and fine.
		tree1, err := ofx.Parse(data)
		if err != nil {
			return
		}

		// A successfully parsed document must parse identically a second
		// time and render to identical JSON both times: the parser keeps
		// no hidden state between runs.
		tree2, err := ofx.Parse(data)
		require.NoError(t, err, "second parse failed where the first succeeded")
		require.Equal(t, tree1, tree2)

		out1, err := ofx.Convert(data)
		require.NoError(t, err, "Convert failed for a parseable document")
		out2, err := ofx.Convert(data)
		require.NoError(t, err)
		require.Equal(t, string(out1), string(out2))
	})
}
