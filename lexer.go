package las

import (
	"strings"

	"go.uber.org/zap"
)

// dataMarkerPrefix terminates the header. It is matched case-sensitively as
// a prefix of the trimmed line, so "~A", "~ASCII" and "~Ascii" all qualify.
const dataMarkerPrefix = "~A"

// SplitDocument splits raw LAS content into header lines and data lines.
// The header ends at the first line whose trimmed text starts with "~A";
// that line is the last header line, and the data lines start directly
// after it. Tabs in header lines are replaced by single spaces, which loses
// the exact layout of tab-formatted files.
//
// ErrNoDataSection is returned when no marker line is found.
func SplitDocument(data []byte) (headerLines, dataLines []string, err error) {
	return splitDocument(data, zap.NewNop())
}

func splitDocument(data []byte, logger *zap.Logger) ([]string, []string, error) {
	lines := splitLines(string(data))
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), dataMarkerPrefix) {
			header := make([]string, i+1)
			for j, hl := range lines[:i] {
				if strings.ContainsRune(hl, '\t') {
					logger.Debug("normalized tabs to spaces in header line",
						zap.Int("line", j))
					hl = strings.ReplaceAll(hl, "\t", " ")
				}
				header[j] = hl
			}
			header[i] = line
			return header, lines[i+1:], nil
		}
	}
	return nil, nil, ErrNoDataSection
}

// splitLines splits on newlines, dropping a trailing carriage return from
// each line and the empty element a trailing newline would produce.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
