package las

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultColumnWidth = 10
	defaultPrecision   = 8

	// wrapLineWidth is the legacy display width that wrapped data lines
	// are limited to.
	wrapLineWidth = 80
)

// DataFormat controls how the data section is rendered.
type DataFormat struct {
	// Wrap splits each sample across multiple lines: the index value alone
	// on its own line, the remaining values grouped into lines of at most
	// 80/ColumnWidth entries. When nil, the header's WRAP flag decides.
	Wrap *bool
	// AlignLeft aligns values to the left of their column instead of the
	// right.
	AlignLeft bool
	// ColumnWidth is the fixed width of one value. Zero means 10.
	ColumnWidth int
	// Precision is the number of significant digits. Zero means 8.
	Precision int
}

func (f DataFormat) columnWidth() int {
	if f.ColumnWidth == 0 {
		return defaultColumnWidth
	}
	return f.ColumnWidth
}

func (f DataFormat) precision() int {
	if f.Precision == 0 {
		return defaultPrecision
	}
	return f.Precision
}

// DecodeData converts the data section lines into a curves × samples
// matrix. All lines are concatenated and tokenized on whitespace, so the
// on-disk line structure (wrapped or not) does not matter. Values equal to
// nullValue decode to NaN.
//
// When stepValue equals nullValue or zero, the step sign is inferred from
// the first two samples of the index curve; a noisy or duplicated first
// sample therefore mis-infers the order. If the effective step is negative
// the sample order of the whole matrix is reversed, so decoded matrices
// always have an ascending index curve.
//
// A *TokenError is returned for a non-numeric token, and ErrShapeMismatch
// when the token count is not an exact multiple of curves.
func DecodeData(lines []string, curves int, nullValue, stepValue float64, opts ...Option) (Matrix, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return decodeData(lines, curves, nullValue, stepValue, o)
}

func decodeData(lines []string, curves int, nullValue, stepValue float64, o *options) (Matrix, error) {
	if curves < 1 {
		return nil, fmt.Errorf("%w: no curves declared", ErrShapeMismatch)
	}
	tokens := strings.Fields(strings.Join(lines, " "))
	if len(tokens)%curves != 0 {
		return nil, fmt.Errorf("%w: %d values across %d curves", ErrShapeMismatch, len(tokens), curves)
	}

	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &TokenError{Token: tok}
		}
		if v == nullValue {
			v = Missing()
		}
		values[i] = v
	}

	samples := len(values) / curves
	m := make(Matrix, curves)
	for c := range m {
		row := make([]float64, samples)
		for s := 0; s < samples; s++ {
			row[s] = values[s*curves+c]
		}
		m[c] = row
	}

	step := stepValue
	if (stepValue == nullValue || stepValue == 0) && samples >= 2 {
		step = m[0][1] - m[0][0]
		o.logger.Debug("inferred step sign from index curve",
			zap.Float64("step", step))
	}
	if step < 0 && !o.keepDescending {
		for _, row := range m {
			reverseFloats(row)
		}
	}
	return m, nil
}

// EncodeData renders the matrix as data section text. NaN values are
// written as the nullValue literal. With reverse set, samples are written
// last to first, restoring the on-disk order of a negative-step file.
//
// Without wrapping, each sample is one line of fixed-width values, one per
// curve. With wrapping, the index value gets its own line and the remaining
// values follow in lines of at most 80/ColumnWidth entries each.
func EncodeData(m Matrix, nullValue float64, reverse bool, f DataFormat) string {
	if m.Curves() == 0 {
		return ""
	}
	width := f.columnWidth()

	var b strings.Builder
	writeValue := func(v float64) {
		if IsMissing(v) {
			v = nullValue
		}
		if f.AlignLeft {
			fmt.Fprintf(&b, "%-*.*g", width, f.precision(), v)
		} else {
			fmt.Fprintf(&b, "%*.*g", width, f.precision(), v)
		}
	}

	wrap := f.Wrap != nil && *f.Wrap
	columns := wrapLineWidth / width
	if columns < 1 {
		columns = 1
	}

	var lines []string
	flush := func() {
		lines = append(lines, b.String())
		b.Reset()
	}

	samples := m.Samples()
	curves := m.Curves()
	for i := 0; i < samples; i++ {
		s := i
		if reverse {
			s = samples - 1 - i
		}
		if !wrap {
			for c := 0; c < curves; c++ {
				writeValue(m[c][s])
			}
			flush()
			continue
		}
		writeValue(m[0][s])
		flush()
		full := (curves - 1) / columns
		for r := 0; r < full; r++ {
			for c := 1 + r*columns; c < 1+(r+1)*columns; c++ {
				writeValue(m[c][s])
			}
			flush()
		}
		// The legacy writer always emits the remainder line, even when
		// the remaining curves divide evenly and it is empty.
		for c := 1 + full*columns; c < curves; c++ {
			writeValue(m[c][s])
		}
		flush()
	}
	return strings.Join(lines, "\n")
}

func reverseFloats(v []float64) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
