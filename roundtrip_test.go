package las

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// TestRoundTrip re-composes every testdata file and requires the output to
// be byte-identical to the input, including all padding, comments and raw
// sections.
func TestRoundTrip(t *testing.T) {
	files, err := filepath.Glob("testdata/*.las")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			doc, err := Parse(src)
			require.NoError(t, err)

			out, err := doc.Compose()
			require.NoError(t, err)

			require.Equal(t, string(src), string(out), "recomposed output does not match the source file")
		})
	}
}

// TestPrettyGolden reformats the header with the default style and compares
// against a golden file.
func TestPrettyGolden(t *testing.T) {
	src, err := os.ReadFile("testdata/mixed.las")
	require.NoError(t, err)

	doc, err := Parse(src)
	require.NoError(t, err)

	doc.Header.Layout = PrettyLayout(doc.Header, DefaultStyle())

	actual, err := doc.Compose()
	require.NoError(t, err)

	goldenFile := strings.Replace("testdata/mixed.las", ".las", ".pretty.golden", 1)
	if *update {
		require.NoError(t, os.WriteFile(goldenFile, actual, 0o644))
	}

	expected, err := os.ReadFile(goldenFile)
	require.NoError(t, err, "Golden file not found. Run with -update to create it.")

	require.Equal(t, string(expected), string(actual))
}
