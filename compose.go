package las

import "strings"

// ComposeLine renders a structured line with the given layout vector using
// the fixed template pad+MNEM+pad+"."+UNIT+pad+DATA+pad+":"+pad+DESC+pad.
func ComposeLine(l Line, vec LayoutVector) string {
	var b strings.Builder
	writePad(&b, vec[0])
	b.WriteString(l.Mnem)
	writePad(&b, vec[1])
	b.WriteByte('.')
	b.WriteString(l.Unit)
	writePad(&b, vec[2])
	b.WriteString(l.Data)
	writePad(&b, vec[3])
	b.WriteByte(':')
	writePad(&b, vec[4])
	b.WriteString(l.Desc)
	writePad(&b, vec[5])
	return b.String()
}

func writePad(b *strings.Builder, n int) {
	for ; n > 0; n-- {
		b.WriteByte(' ')
	}
}

// composer accumulates header output lines, replaying recorded comments by
// absolute line index. Replay is positional, not content-based: a comment
// recorded against a line that has since been removed still appears at that
// numeric position.
type composer struct {
	lines    []string
	comments map[int]string
}

// emit replays any comments recorded for the current position, then
// appends s.
func (c *composer) emit(s string) {
	for {
		comment, ok := c.comments[len(c.lines)]
		if !ok {
			break
		}
		c.lines = append(c.lines, comment)
	}
	c.lines = append(c.lines, s)
}

// ComposeHeader renders the header section by section in key order. A
// structured line without a captured or supplied layout vector falls back
// to MinimalLayout. Sections with no content are skipped. The data section
// marker title is always the last line, even when the header tracks no "A"
// section: a subsequent parse relies on that line to terminate the header.
func ComposeHeader(h *Header) string {
	c := &composer{comments: h.Comments}
	if c.comments == nil {
		c.comments = map[int]string{}
	}

	for _, key := range h.Sections.Keys() {
		sec, _ := h.Sections.Get(key)
		if sec.IsRaw() {
			if sec.Raw == "" {
				continue
			}
			c.emit(h.title(key))
			for _, line := range strings.Split(sec.Raw, "\n") {
				c.emit(line)
			}
			continue
		}
		if sec.Len() == 0 {
			continue
		}
		c.emit(h.title(key))
		sectionLayout := h.Layout[key]
		sec.Lines.Range(func(lineKey string, l Line) bool {
			vec, ok := sectionLayout[lineKey]
			if !ok {
				vec = MinimalLayout
			}
			c.emit(ComposeLine(l, vec))
			return true
		})
	}
	c.emit(h.title("A"))
	return strings.Join(c.lines, "\n")
}

// title returns the display title of a section, defaulting to "~"+key.
func (h *Header) title(key string) string {
	if t, ok := h.Titles[key]; ok {
		return t
	}
	return "~" + key
}
