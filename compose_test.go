package las

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wellstack/go-las/internal/ordered"
)

func TestComposeLineMinimalLayout(t *testing.T) {
	l := Line{Mnem: "STRT", Unit: "M", Data: "1500.0", Desc: "START"}
	require.Equal(t, "STRT.M 1500.0:START", ComposeLine(l, MinimalLayout))
}

func TestComposeLineExactLayout(t *testing.T) {
	l := Line{Mnem: "DEPTH", Unit: "M", Desc: "MEASURED DEPTH"}
	require.Equal(t,
		"  DEPTH.M       : MEASURED DEPTH  ",
		ComposeLine(l, LayoutVector{2, 0, 7, 0, 1, 2}))
}

func TestComposeHeaderDefaults(t *testing.T) {
	h := &Header{Sections: ordered.New[*Section]()}
	w := NewSection()
	w.Lines.Set("STRT", Line{Mnem: "STRT", Unit: "M", Data: "0.0", Desc: "START"})
	h.Sections.Set("W", w)

	// No titles, no layout: "~"+key titles and the minimal layout apply,
	// and the data marker title is appended even without an "A" section.
	require.Equal(t,
		"~W\nSTRT.M 0.0:START\n~A",
		ComposeHeader(h))
}

func TestComposeHeaderRawSectionVerbatim(t *testing.T) {
	h := &Header{Sections: ordered.New[*Section]()}
	h.Sections.Set("O", &Section{Raw: "anything goes here\n  even indented text"})
	h.Titles = map[string]string{"O": "~Other information"}

	require.Equal(t,
		"~Other information\nanything goes here\n  even indented text\n~A",
		ComposeHeader(h))
}

func TestComposeHeaderSkipsEmptySections(t *testing.T) {
	h := &Header{Sections: ordered.New[*Section]()}
	h.Sections.Set("V", NewSection())
	h.Sections.Set("O", &Section{})
	w := NewSection()
	w.Lines.Set("NULL", Line{Mnem: "NULL", Data: "-999.25"})
	h.Sections.Set("W", w)

	require.Equal(t, "~W\nNULL. -999.25:\n~A", ComposeHeader(h))
}

func TestComposeHeaderReplaysComments(t *testing.T) {
	h := &Header{
		Sections: ordered.New[*Section](),
		Comments: map[int]string{
			0: "# file comment",
			2: "# before the null line",
			3: "# and another one",
		},
	}
	w := NewSection()
	w.Lines.Set("NULL", Line{Mnem: "NULL", Data: "-999.25"})
	h.Sections.Set("W", w)

	require.Equal(t, strings.Join([]string{
		"# file comment",
		"~W",
		"# before the null line",
		"# and another one",
		"NULL. -999.25:",
		"~A",
	}, "\n"), ComposeHeader(h))
}

func TestComposeHeaderCommentBeyondLastLine(t *testing.T) {
	// Replay is positional: a comment recorded past the final output line
	// index is appended before the marker if its position is reached, and
	// silently dropped otherwise.
	h := &Header{
		Sections: ordered.New[*Section](),
		Comments: map[int]string{0: "# leading", 99: "# unreachable"},
	}
	require.Equal(t, "# leading\n~A", ComposeHeader(h))
}

func TestComposeHeaderUsesCapturedLayout(t *testing.T) {
	h := &Header{
		Sections: ordered.New[*Section](),
		Layout: LayoutMap{
			"W": {"STRT": {1, 0, 2, 1, 1, 0}},
		},
	}
	w := NewSection()
	w.Lines.Set("STRT", Line{Mnem: "STRT", Unit: "M", Data: "1500.0", Desc: "START DEPTH"})
	h.Sections.Set("W", w)

	require.Equal(t, "~W\n STRT.M  1500.0 : START DEPTH\n~A", ComposeHeader(h))
}
