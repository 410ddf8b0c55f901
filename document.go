package las

import (
	"math"

	"github.com/wellstack/go-las/internal/ordered"
)

// Field names of a header line.
const (
	FieldMnem = "MNEM"
	FieldUnit = "UNIT"
	FieldData = "DATA"
	FieldDesc = "DESC"
)

// Line is one structured header line. All four fields are stored trimmed;
// any of them may be empty.
type Line struct {
	Mnem string
	Unit string
	Data string
	Desc string
}

// Field returns the named field of the line.
func (l Line) Field(name string) (string, bool) {
	switch name {
	case FieldMnem:
		return l.Mnem, true
	case FieldUnit:
		return l.Unit, true
	case FieldData:
		return l.Data, true
	case FieldDesc:
		return l.Desc, true
	}
	return "", false
}

// SetField sets the named field of the line.
func (l *Line) SetField(name, value string) bool {
	switch name {
	case FieldMnem:
		l.Mnem = value
	case FieldUnit:
		l.Unit = value
	case FieldData:
		l.Data = value
	case FieldDesc:
		l.Desc = value
	default:
		return false
	}
	return true
}

// LayoutVector holds the six whitespace run lengths of a header line:
// before MNEM, after MNEM, after UNIT, after DATA, after the colon, and
// after DESC. Composing a line with the vector captured when it was parsed
// reproduces the original source line byte for byte.
type LayoutVector [6]int

// MinimalLayout renders a line with a single space separating UNIT and DATA
// and no other padding.
var MinimalLayout = LayoutVector{0, 0, 1, 0, 0, 0}

// LayoutMap maps section key to line key to layout vector.
type LayoutMap map[string]map[string]LayoutVector

// Section is one header section. It is either structured (Lines is non-nil)
// or raw (Lines is nil and Raw holds the verbatim section body). The choice
// is made once for the whole section: if any contained line fails to parse,
// the section keeps its original text instead.
type Section struct {
	Lines *ordered.Map[Line]
	Raw   string
}

// NewSection returns an empty structured section.
func NewSection() *Section {
	return &Section{Lines: ordered.New[Line]()}
}

// IsRaw reports whether the section is stored as raw text.
func (s *Section) IsRaw() bool { return s.Lines == nil }

// Len returns the number of structured lines, or 0 for a raw section.
func (s *Section) Len() int {
	if s.IsRaw() {
		return 0
	}
	return s.Lines.Len()
}

// Line returns the structured line stored under key.
func (s *Section) Line(key string) (Line, bool) {
	if s.IsRaw() {
		return Line{}, false
	}
	return s.Lines.Get(key)
}

// Header is the ordered collection of sections of a LAS document, keyed by
// single uppercase letters in file order, together with the section display
// titles, the comments keyed by absolute header line index, and the captured
// whitespace layout.
type Header struct {
	Sections *ordered.Map[*Section]
	Titles   map[string]string
	Comments map[int]string
	Layout   LayoutMap
}

// NewHeader returns a minimal well-formed header: a version section holding
// VERS and WRAP, empty well and curve sections, and the data section marker.
func NewHeader() *Header {
	h := &Header{
		Sections: ordered.New[*Section](),
		Titles: map[string]string{
			"V": "~VERSION INFORMATION",
			"W": "~WELL INFORMATION",
			"C": "~CURVE INFORMATION",
			"A": "~ASCII",
		},
		Comments: make(map[int]string),
		Layout:   make(LayoutMap),
	}
	v := NewSection()
	v.Lines.Set("VERS", Line{Mnem: "VERS", Data: "2.0", Desc: "CWLS LOG ASCII STANDARD - VERSION 2.0"})
	v.Lines.Set("WRAP", Line{Mnem: "WRAP", Data: "NO", Desc: "ONE LINE PER DEPTH STEP"})
	h.Sections.Set("V", v)
	h.Sections.Set("W", NewSection())
	h.Sections.Set("C", NewSection())
	h.Sections.Set("A", &Section{})
	return h
}

// Section returns the section stored under key.
func (h *Header) Section(key string) (*Section, bool) {
	if h.Sections == nil {
		return nil, false
	}
	return h.Sections.Get(key)
}

// Matrix is numeric well-log data, one row per curve in file order. After
// decoding, row 0 (the index curve) is ascending. Missing samples are NaN.
type Matrix [][]float64

// Curves returns the number of curves.
func (m Matrix) Curves() int { return len(m) }

// Samples returns the number of samples per curve.
func (m Matrix) Samples() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsMissing reports whether v is the in-memory missing value.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// Missing is the in-memory representation of a null sample.
func Missing() float64 { return math.NaN() }

// Document is a whole LAS file: the header and the decoded data matrix.
// A Document is not safe for concurrent mutation; callers that share one
// across goroutines must synchronize externally.
type Document struct {
	Header *Header
	Data   Matrix
}
