package las

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/wellstack/go-las/internal/ordered"
)

// SplitLine splits one header line into its four trimmed fields.
//
// The line is cut by three ordered splits: once from the right at the last
// colon, once from the left at the first period, and once from the left at
// the first space of what remains. The order tolerates periods and extra
// spaces inside the description. A *LineError is returned when any of the
// three separators is absent.
func SplitLine(line string) (Line, error) {
	l, _, err := SplitLineLayout(line)
	return l, err
}

// SplitLineLayout is SplitLine returning also the whitespace layout vector
// of the line. Composing the fields with the vector reproduces line exactly.
func SplitLineLayout(line string) (Line, LayoutVector, error) {
	mnem, unit, data, desc, err := splitLineRaw(line)
	if err != nil {
		return Line{}, LayoutVector{}, err
	}
	l := Line{
		Mnem: strings.TrimSpace(mnem),
		Unit: strings.TrimSpace(unit),
		Data: strings.TrimSpace(data),
		Desc: strings.TrimSpace(desc),
	}
	return l, lineLayout(mnem, data, desc), nil
}

// splitLineRaw cuts the line into its four parts without trimming. The
// space separating UNIT from DATA is kept at the front of data so that the
// captured layout re-renders it.
func splitLineRaw(line string) (mnem, unit, data, desc string, err error) {
	colon := strings.LastIndex(line, ":")
	if colon < 0 {
		return "", "", "", "", &LineError{Line: line, Reason: `no ":" separator`}
	}
	rest := line[:colon]
	desc = line[colon+1:]

	dot := strings.Index(rest, ".")
	if dot < 0 {
		return "", "", "", "", &LineError{Line: line, Reason: `no "." separator`}
	}
	mnem = rest[:dot]
	rest = rest[dot+1:]

	sp := strings.Index(rest, " ")
	if sp < 0 {
		return "", "", "", "", &LineError{Line: line, Reason: `no space between unit and value`}
	}
	unit = rest[:sp]
	data = rest[sp:]
	return mnem, unit, data, desc, nil
}

// lineLayout derives the six whitespace run lengths from the untrimmed
// mnemonic, value and description parts.
func lineLayout(mnem, data, desc string) LayoutVector {
	lm := strings.TrimLeft(mnem, " ")
	ld := strings.TrimLeft(data, " ")
	le := strings.TrimLeft(desc, " ")
	return LayoutVector{
		len(mnem) - len(lm),
		len(lm) - len(strings.TrimRight(lm, " ")),
		len(data) - len(ld),
		len(ld) - len(strings.TrimRight(ld, " ")),
		len(desc) - len(le),
		len(le) - len(strings.TrimRight(le, " ")),
	}
}

// ParseHeader assembles header lines into a Header.
//
// Each line is classified as a comment (trimmed text starts with "#",
// recorded by absolute line index), a section marker (trimmed text starts
// with "~", opening a section keyed by the upper-cased character following
// the tilde), or an ordinary line belonging to the open section. Once all
// lines of a section are collected, every one of them is parsed; if any
// fails, the whole section is kept as raw text, since a partially
// structured section would break positional addressing for the rest of it.
//
// Duplicate mnemonics within one section get line keys suffixed "_0001",
// "_0002", ... in order of appearance; the MNEM field itself keeps the
// original text.
func ParseHeader(lines []string, opts ...Option) (*Header, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return parseHeader(lines, o.logger)
}

func parseHeader(lines []string, logger *zap.Logger) (*Header, error) {
	h := &Header{
		Sections: ordered.New[*Section](),
		Titles:   make(map[string]string),
		Comments: make(map[int]string),
		Layout:   make(LayoutMap),
	}

	pending := ordered.New[*[]string]()
	var current *[]string
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "#"):
			h.Comments[i] = line
		case strings.HasPrefix(trimmed, "~"):
			key, err := sectionKey(line)
			if err != nil {
				return nil, err
			}
			buf := &[]string{}
			pending.Set(key, buf)
			current = buf
			h.Titles[key] = line
		default:
			if current == nil {
				return nil, &LineError{Line: line, Reason: "appears before any section marker"}
			}
			*current = append(*current, line)
		}
	}

	for _, key := range pending.Keys() {
		buf, _ := pending.Get(key)
		h.Sections.Set(key, assembleSection(key, *buf, h, logger))
	}
	return h, nil
}

// sectionKey returns the upper-cased character following the first tilde.
func sectionKey(line string) (string, error) {
	after := line[strings.IndexRune(line, '~')+1:]
	if after == "" {
		return "", fmt.Errorf("las: section marker %q has no key character", line)
	}
	r, _ := utf8.DecodeRuneInString(after)
	return strings.ToUpper(string(r)), nil
}

// assembleSection parses every buffered line of one section and decides the
// section variant. On success it also records the captured layout vectors
// under the section's line keys.
func assembleSection(key string, lines []string, h *Header, logger *zap.Logger) *Section {
	if len(lines) == 0 {
		return &Section{}
	}

	sec := NewSection()
	layout := make(map[string]LayoutVector, len(lines))
	for _, line := range lines {
		parsed, vec, err := SplitLineLayout(line)
		if err != nil {
			logger.Debug("section degraded to raw text",
				zap.String("section", key),
				zap.Error(err))
			return &Section{Raw: strings.Join(lines, "\n")}
		}

		lineKey := parsed.Mnem
		count := 0
		for sec.Lines.Has(lineKey) {
			count++
			lineKey = fmt.Sprintf("%s_%04d", parsed.Mnem, count)
		}
		if count > 0 {
			logger.Debug("renamed duplicate mnemonic",
				zap.String("section", key),
				zap.String("mnemonic", parsed.Mnem),
				zap.String("key", lineKey))
		}
		sec.Lines.Set(lineKey, parsed)
		layout[lineKey] = vec
	}
	h.Layout[key] = layout
	return sec
}
