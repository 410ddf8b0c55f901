package las

import (
	"io"
	"os"
)

// Parse decodes a whole LAS document: the header is split off at the data
// marker and assembled into ordered sections, and the data section is
// decoded into a matrix with an ascending index curve.
//
// The curve count is the number of lines of the curve section; the null
// sentinel and step come from the well section. A missing curve section or
// a missing NULL or STEP field is a *MissingFieldError.
func Parse(data []byte, opts ...Option) (*Document, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	headerLines, dataLines, err := splitDocument(data, o.logger)
	if err != nil {
		return nil, err
	}
	h, err := parseHeader(headerLines, o.logger)
	if err != nil {
		return nil, err
	}

	curveSec, ok := h.Section("C")
	if !ok || curveSec.IsRaw() {
		return nil, &MissingFieldError{Section: "C"}
	}
	null, err := h.NullValue()
	if err != nil {
		return nil, err
	}
	step, err := h.StepValue()
	if err != nil {
		return nil, err
	}

	m, err := decodeData(dataLines, curveSec.Len(), null, step, o)
	if err != nil {
		return nil, err
	}
	return &Document{Header: h, Data: m}, nil
}

// Read decodes a LAS document from r.
func Read(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}

// ReadFile decodes the LAS document stored at path.
func ReadFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}

// Compose renders the document back to text: the header, a newline, and
// the data section.
//
// NULL and STEP are read from the well section; when STEP is negative (and
// not the null sentinel) the samples are written last to first, restoring
// the on-disk descending order. The header's WRAP flag selects wrapped data
// output unless WithDataFormat overrides it.
func (d *Document) Compose(opts ...Option) ([]byte, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	null, err := d.Header.NullValue()
	if err != nil {
		return nil, err
	}
	step, err := d.Header.StepValue()
	if err != nil {
		return nil, err
	}
	reverse := step != null && step < 0

	var f DataFormat
	if o.dataFormat != nil {
		f = *o.dataFormat
	}
	if f.Wrap == nil {
		wrap := d.Header.WrapOutput()
		f.Wrap = &wrap
	}

	out := ComposeHeader(d.Header) + "\n" + EncodeData(d.Data, null, reverse, f)
	return []byte(out), nil
}

// Write renders the document and writes it to w.
func (d *Document) Write(w io.Writer, opts ...Option) error {
	data, err := d.Compose(opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile renders the document and writes it to path.
func (d *Document) WriteFile(path string, opts ...Option) error {
	data, err := d.Compose(opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
