package las

import (
	"fmt"
	"strconv"
	"strings"
)

// CurveNames returns the curve mnemonics in file order, taken from the
// MNEM field of each curve section line (unsuffixed even for duplicates).
// It returns nil when the curve section is absent or unstructured.
func (h *Header) CurveNames() []string {
	return h.curveField(FieldMnem)
}

// CurveUnits returns the curve units in file order.
func (h *Header) CurveUnits() []string {
	return h.curveField(FieldUnit)
}

func (h *Header) curveField(field string) []string {
	sec, ok := h.Section("C")
	if !ok || sec.IsRaw() {
		return nil
	}
	var out []string
	sec.Lines.Range(func(_ string, l Line) bool {
		v, _ := l.Field(field)
		out = append(out, v)
		return true
	})
	return out
}

// WellName returns the DATA field of the WELL line of the well section.
func (h *Header) WellName() (string, bool) {
	return h.Get("W", "WELL", FieldData)
}

// NullValue returns the declared null sentinel (W.NULL).
func (h *Header) NullValue() (float64, error) {
	return h.floatField("W", "NULL")
}

// StepValue returns the declared index step (W.STEP).
func (h *Header) StepValue() (float64, error) {
	return h.floatField("W", "STEP")
}

func (h *Header) floatField(section, key string) (float64, error) {
	s, ok := h.Get(section, key, FieldData)
	if !ok {
		return 0, &MissingFieldError{Section: section, Mnem: key}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &MissingFieldError{Section: section, Mnem: key}
	}
	return v, nil
}

// WrapOutput reports whether the version section requests wrapped data
// output (a WRAP value beginning with "Y"). An absent WRAP line means no
// wrapping.
func (h *Header) WrapOutput() bool {
	v, ok := h.Get("V", "WRAP", FieldData)
	return ok && strings.HasPrefix(strings.ToUpper(v), "Y")
}

// Get returns a field of a structured header line.
func (h *Header) Get(section, lineKey, field string) (string, bool) {
	sec, ok := h.Section(section)
	if !ok || sec.IsRaw() {
		return "", false
	}
	l, ok := sec.Lines.Get(lineKey)
	if !ok {
		return "", false
	}
	return l.Field(field)
}

// Set updates a field of a structured header line.
func (h *Header) Set(section, lineKey, field, value string) error {
	sec, ok := h.Section(section)
	if !ok || sec.IsRaw() {
		return &MissingFieldError{Section: section}
	}
	l, ok := sec.Lines.Get(lineKey)
	if !ok {
		return &MissingFieldError{Section: section, Mnem: lineKey}
	}
	if !l.SetField(field, value) {
		return fmt.Errorf("las: unknown line field %q", field)
	}
	sec.Lines.Set(lineKey, l)
	return nil
}

// SetCurves rewrites the curve section so that it lists exactly the given
// names and units, in order. With keep set, existing curve lines are reused
// (their unit updated, their data and description preserved) and moved into
// the requested order; otherwise the section is rebuilt from scratch with
// empty DATA and DESC fields.
func (h *Header) SetCurves(names, units []string, keep bool) error {
	if len(names) != len(units) {
		return fmt.Errorf("las: %d curve names for %d units", len(names), len(units))
	}
	sec, ok := h.Section("C")
	if !ok || sec.IsRaw() {
		sec = NewSection()
		h.Sections.Set("C", sec)
		keep = false
	}

	if !keep {
		fresh := NewSection()
		for i, name := range names {
			fresh.Lines.Set(name, Line{Mnem: name, Unit: units[i]})
		}
		*sec = *fresh
		return nil
	}

	for _, key := range sec.Lines.Keys() {
		if !contains(names, key) {
			sec.Lines.Delete(key)
		}
	}
	for i, name := range names {
		if l, ok := sec.Lines.Get(name); ok {
			l.Unit = units[i]
			sec.Lines.Set(name, l)
			sec.Lines.MoveToEnd(name)
		} else {
			sec.Lines.Set(name, Line{Mnem: name, Unit: units[i]})
		}
	}
	return nil
}

// SetDepthRange rewrites the well section's STRT, STOP and STEP lines from
// a depth column and its unit. STEP is the uniform sample spacing, or zero
// when the spacing is not uniform. Missing lines are appended to the well
// section.
func (h *Header) SetDepthRange(depth []float64, unit string) error {
	if len(depth) == 0 {
		return fmt.Errorf("las: empty depth column")
	}
	sec, ok := h.Section("W")
	if !ok || sec.IsRaw() {
		return &MissingFieldError{Section: "W"}
	}

	step := 0.0
	if len(depth) > 1 {
		step = depth[1] - depth[0]
		for i := 2; i < len(depth); i++ {
			if depth[i]-depth[i-1] != step {
				step = 0
				break
			}
		}
	}

	set := func(key string, value float64) {
		l, ok := sec.Lines.Get(key)
		if !ok {
			l = Line{Mnem: key}
		}
		l.Unit = unit
		l.Data = strconv.FormatFloat(value, 'g', -1, 64)
		sec.Lines.Set(key, l)
	}
	set("STRT", depth[0])
	set("STOP", depth[len(depth)-1])
	set("STEP", step)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
