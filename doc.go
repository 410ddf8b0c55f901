/*
Package las reads and writes LAS 2.0 well-log files with full layout
fidelity.

A LAS file is a text header of "~"-marked sections followed by a flat
numeric data section. The package decodes a whole file into a Document: an
ordered header model (sections of MNEM.UNIT DATA : DESC lines, plus the
comments and the exact whitespace layout of every line) and a curves ×
samples matrix with the null sentinel replaced by NaN and the index curve
normalized to ascending order.

Reading and writing are symmetric:

	doc, err := las.ReadFile("well.las")
	if err != nil {
		// handle error
	}
	names := doc.Header.CurveNames()
	depth := doc.Data[0]

	// ... edit the document ...

	if err := doc.WriteFile("out.las"); err != nil {
		// handle error
	}

Round-trip fidelity is a contract, not an accident: a line composed with
the layout vector captured when it was parsed reproduces the original
source line byte for byte, and comments reappear at their recorded
positions. For freshly built or heavily edited headers, PrettyLayout
computes a column-aligned layout from alignment and margin styles instead.

Header lines that do not parse never fail the document: the section owning
them degrades to raw text and is written back verbatim. Only a missing data
marker, malformed numeric data, a shape mismatch, or an absent NULL or STEP
field fail a whole load or save.

The codec is synchronous and whole-document; a Document is owned by its
caller and needs external locking if shared across goroutines.
*/
package las
