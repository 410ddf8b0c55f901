package las

import "fmt"

// Alignment positions a field's text inside its padded column.
type Alignment int

const (
	// AlignNone applies margins only; column slack is dropped.
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment converts a textual alignment name to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "", "none":
		return AlignNone, nil
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignNone, fmt.Errorf("las: unknown alignment %q", s)
}

// FieldStyle is the layout style of one line field. UNIT is never padded,
// so only MNEM, DATA and DESC carry a style.
type FieldStyle struct {
	Align       Alignment
	LeftMargin  int
	RightMargin int
}

// Style is the full style input of PrettyLayout.
type Style struct {
	Mnem FieldStyle
	Data FieldStyle
	Desc FieldStyle
	// UniformSections sizes columns across all structured sections rather
	// than per section.
	UniformSections bool
}

// DefaultStyle returns the style used by writers that do not care:
// everything left-aligned with single-space margins, uniform across
// sections.
func DefaultStyle() Style {
	return Style{
		Mnem:            FieldStyle{Align: AlignLeft, LeftMargin: 1},
		Data:            FieldStyle{Align: AlignLeft, LeftMargin: 1, RightMargin: 1},
		Desc:            FieldStyle{Align: AlignLeft, LeftMargin: 1},
		UniformSections: true,
	}
}

// fieldSizes holds the trimmed text length of each field, one entry per
// line, aligned across the four slices.
type fieldSizes struct {
	mnem, unit, data, desc []int
}

func (s *fieldSizes) add(l Line) {
	s.mnem = append(s.mnem, len(l.Mnem))
	s.unit = append(s.unit, len(l.Unit))
	s.data = append(s.data, len(l.Data))
	s.desc = append(s.desc, len(l.Desc))
}

func (s *fieldSizes) append(o *fieldSizes) {
	s.mnem = append(s.mnem, o.mnem...)
	s.unit = append(s.unit, o.unit...)
	s.data = append(s.data, o.data...)
	s.desc = append(s.desc, o.desc...)
}

// PrettyLayout computes a layout vector for every line of every structured
// section so that, once composed, field boundaries line up into columns.
//
// Per field the column width is the maximum trimmed length, taken per
// section or across all structured sections depending on the style. Each
// line's slack is distributed left and right of the text according to the
// field's alignment. An aligned DATA field additionally receives the offset
// that pushes it past the widest mnemonic-and-unit run into a shared
// column, and an aligned DESC field stacks the same offset over
// MNEM+UNIT+DATA (unless DATA is itself aligned, in which case DESC needs
// no offset of its own). Field contents are never modified, only the
// padding around them.
func PrettyLayout(h *Header, style Style) LayoutMap {
	local := make(map[string]*fieldSizes)
	global := &fieldSizes{}
	for _, key := range h.Sections.Keys() {
		sec, _ := h.Sections.Get(key)
		if sec.IsRaw() || sec.Len() == 0 {
			continue
		}
		sizes := &fieldSizes{}
		sec.Lines.Range(func(_ string, l Line) bool {
			sizes.add(l)
			return true
		})
		local[key] = sizes
		global.append(sizes)
	}

	layout := make(LayoutMap, len(local))
	for _, key := range h.Sections.Keys() {
		sizes, ok := local[key]
		if !ok {
			continue
		}
		msize := sizes
		if style.UniformSections {
			msize = global
		}

		maxMnem := maxSum(msize.mnem)
		maxData := maxSum(msize.data)
		maxDesc := maxSum(msize.desc)

		sec, _ := h.Sections.Get(key)
		sectionLayout := make(map[string]LayoutVector, sec.Len())
		i := 0
		sec.Lines.Range(func(lineKey string, l Line) bool {
			var vec LayoutVector
			vec[0], vec[1] = distribute(style.Mnem, maxMnem-len(l.Mnem))
			vec[2], vec[3] = distribute(style.Data, maxData-len(l.Data))
			vec[2] += dataOffset(style, msize, sizes, i)
			vec[4], vec[5] = distribute(style.Desc, maxDesc-len(l.Desc))
			vec[4] += descOffset(style, msize, sizes, i)
			sectionLayout[lineKey] = vec
			i++
			return true
		})
		layout[key] = sectionLayout
	}
	return layout
}

// dataOffset returns the extra left padding that moves line i's DATA field
// into the shared column. With an aligned MNEM the mnemonic column is
// already uniform and only the unit raggedness needs compensating;
// otherwise the offset spans the whole mnemonic-and-unit run.
func dataOffset(style Style, msize, sizes *fieldSizes, i int) int {
	if style.Data.Align == AlignNone {
		return 0
	}
	if style.Mnem.Align != AlignNone {
		return maxSum(msize.unit) - sizes.unit[i]
	}
	return maxSum(msize.mnem, msize.unit) - sizes.mnem[i] - sizes.unit[i]
}

// descOffset is the DESC counterpart of dataOffset. It is zero whenever
// DATA is aligned: DATA already ends in a shared column then, and the
// description follows it directly.
func descOffset(style Style, msize, sizes *fieldSizes, i int) int {
	if style.Desc.Align == AlignNone || style.Data.Align != AlignNone {
		return 0
	}
	if style.Mnem.Align != AlignNone {
		return maxSum(msize.unit, msize.data) - sizes.unit[i] - sizes.data[i]
	}
	return maxSum(msize.mnem, msize.unit, msize.data) -
		sizes.mnem[i] - sizes.unit[i] - sizes.data[i]
}

// distribute splits slack around a field per its alignment and adds the
// fixed margins.
func distribute(fs FieldStyle, slack int) (left, right int) {
	switch fs.Align {
	case AlignLeft:
		return fs.LeftMargin, fs.RightMargin + slack
	case AlignCenter:
		return fs.LeftMargin + slack/2, fs.RightMargin + (slack+1)/2
	case AlignRight:
		return fs.LeftMargin + slack, fs.RightMargin
	default:
		return fs.LeftMargin, fs.RightMargin
	}
}

// maxSum returns the maximum over lines of the elementwise sum of the
// given size slices.
func maxSum(sizes ...[]int) int {
	max := 0
	if len(sizes) == 0 || len(sizes[0]) == 0 {
		return 0
	}
	for i := range sizes[0] {
		sum := 0
		for _, s := range sizes {
			sum += s[i]
		}
		if sum > max {
			max = sum
		}
	}
	return max
}
