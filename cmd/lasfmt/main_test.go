package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	las "github.com/wellstack/go-las"
)

const sampleLAS = "~Version\n" +
	" VERS. 2.0 :\n" +
	" WRAP. NO :\n" +
	"~Well\n" +
	" STEP.M 0.5 :\n" +
	" NULL. -999.25 :\n" +
	"~Curve\n" +
	" DEPT.M : MEASURED DEPTH\n" +
	" GR.API : GAMMA RAY\n" +
	"~A\n" +
	"      1500       1.5\n" +
	"    1500.5      2.25"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "well.las")
	require.NoError(t, os.WriteFile(path, []byte(sampleLAS), 0o644))
	return path
}

func TestLoadStyleDefaults(t *testing.T) {
	style, err := loadStyle("")
	require.NoError(t, err)
	require.Equal(t, las.DefaultStyle(), style)
}

func TestLoadStyleFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	cfg := strings.Join([]string{
		"mnem:",
		"  align: right",
		"  left_margin: 2",
		"data:",
		"  align: center",
		"  right_margin: 3",
		"uniform_sections: false",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	style, err := loadStyle(path)
	require.NoError(t, err)
	require.Equal(t, las.AlignRight, style.Mnem.Align)
	require.Equal(t, 2, style.Mnem.LeftMargin)
	require.Equal(t, las.AlignCenter, style.Data.Align)
	require.Equal(t, 3, style.Data.RightMargin)
	require.False(t, style.UniformSections)

	// An untouched field keeps its default.
	require.Equal(t, las.DefaultStyle().Desc, style.Desc)
}

func TestLoadStyleBadAlignment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mnem:\n  align: sideways\n"), 0o644))

	_, err := loadStyle(path)
	require.Error(t, err)
}

func TestLoadStyleMissingFile(t *testing.T) {
	_, err := loadStyle(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestRunPrintsToStdout(t *testing.T) {
	path := writeSample(t)

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	got := out.String()
	require.Contains(t, got, "~Version")
	require.Contains(t, got, "DEPT.M")
	require.True(t, strings.HasSuffix(got, "\n"))

	// The reformatted output must still parse and round-trip cleanly.
	doc, err := las.Parse([]byte(strings.TrimSuffix(got, "\n")))
	require.NoError(t, err)
	require.Equal(t, []string{"DEPT", "GR"}, doc.Header.CurveNames())
}

func TestRunRewritesInPlace(t *testing.T) {
	path := writeSample(t)

	cmd := newRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"-w", path})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := las.Parse(data)
	require.NoError(t, err)
	require.Equal(t, []string{"DEPT", "GR"}, doc.Header.CurveNames())

	// Reformatting is idempotent: a second run changes nothing.
	cmd = newRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"-w", path})
	require.NoError(t, cmd.Execute())

	again, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(data), string(again))
}

func TestRunMissingFile(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.las")})

	require.Error(t, cmd.Execute())
}
