// SPDX-License-Identifier: MIT

// Text encoding of the dictionary-of-keys Matrix.
//
// The format is line oriented:
//
//	rows=<R>
//	cols=<C>
//	(<row>, <col>, <value>)
//	...
//
// Two header lines declare the shape, then one parenthesized triple per
// stored entry. Serialization emits triples in ascending row-major order,
// so equal matrices always encode to identical bytes. Parsing trims every
// line and skips blank ones anywhere, and is strict about everything else.

package sparse

import (
	"encoding"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Encoding literals. The parser accepts arbitrary spacing inside a triple;
// the serializer always emits the canonical "(r, c, v)" spelling.
const (
	hdrRows   = "rows"
	hdrCols   = "cols"
	hdrSep    = "="
	cellOpen  = "("
	cellClose = ")"
	cellSep   = ","

	fmtHeader = "%s=%d\n"
	fmtCell   = "(%d, %d, %d)\n"

	savePerm = 0o644 // result files are plain shareable text
)

// Compile-time interface conformance.
var (
	_ encoding.TextMarshaler   = (*Matrix)(nil)
	_ encoding.TextUnmarshaler = (*Matrix)(nil)
	_ fmt.Stringer             = (*Matrix)(nil)
)

// Parse decodes the text encoding into a fresh Matrix.
//
// Behavior:
//   - every line is whitespace-trimmed and blank lines are skipped anywhere;
//   - the first two remaining lines must be the rows= and cols= headers,
//     in that order (the key before "=" is not inspected, only position
//     distinguishes the two);
//   - every further line must be a parenthesized triple of three integers;
//   - each triple is applied through Set, so a zero value stores nothing
//     and a repeated coordinate keeps the last value;
//   - coordinates are not checked against the declared shape.
//
// Errors: ErrEmptyInput for blank input, ErrNonIntegerCell for a triple
// that is not three integers, wrapped ErrBadFormat for everything else;
// all satisfy errors.Is(err, ErrBadFormat).
// Complexity: O(len(data)).
func Parse(data []byte) (*Matrix, error) {
	lines := contentLines(data)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("missing %s/%s headers: %w", hdrRows, hdrCols, ErrBadFormat)
	}

	rows, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}
	cols, err := parseHeader(lines[1])
	if err != nil {
		return nil, err
	}

	m := New(rows, cols)
	for _, line := range lines[2:] {
		row, col, v, err := parseCell(line)
		if err != nil {
			return nil, err
		}
		m.Set(row, col, v)
	}

	return m, nil
}

// contentLines splits data into trimmed, non-blank lines.
func contentLines(data []byte) []string {
	var lines []string
	for _, raw := range strings.Split(string(data), "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseHeader extracts the integer after the first "=" of a header line.
func parseHeader(line string) (int, error) {
	_, value, found := strings.Cut(line, hdrSep)
	if !found {
		return 0, fmt.Errorf("header %q: %w", line, ErrBadFormat)
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("header %q: %w", line, ErrBadFormat)
	}
	return n, nil
}

// parseCell decodes one "(row, col, value)" line.
func parseCell(line string) (row, col int, v int64, err error) {
	if !strings.HasPrefix(line, cellOpen) || !strings.HasSuffix(line, cellClose) {
		return 0, 0, 0, fmt.Errorf("cell %q is not parenthesized: %w", line, ErrBadFormat)
	}
	fields := strings.Split(strings.Trim(line, cellOpen+cellClose), cellSep)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("cell %q: %w", line, ErrNonIntegerCell)
	}
	nums := make([]int64, len(fields))
	for i, f := range fields {
		nums[i], err = strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("cell %q: %w", line, ErrNonIntegerCell)
		}
	}
	return int(nums[0]), int(nums[1]), nums[2], nil
}

// MarshalText encodes m into canonical text: both headers, then one triple
// per stored entry in ascending row-major order, each line newline-ended.
// The returned error is always nil; the signature satisfies
// encoding.TextMarshaler. Complexity: O(nnz·log nnz).
func (m *Matrix) MarshalText() ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, fmtHeader, hdrRows, m.rows)
	fmt.Fprintf(&b, fmtHeader, hdrCols, m.cols)
	for _, k := range m.sortedCells() {
		fmt.Fprintf(&b, fmtCell, k.row, k.col, m.cells[k])
	}
	return []byte(b.String()), nil
}

// UnmarshalText replaces the receiver with the decoded matrix; on error the
// receiver is left untouched. Satisfies encoding.TextUnmarshaler.
func (m *Matrix) UnmarshalText(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

// String renders the canonical text encoding, for printing and logs.
func (m *Matrix) String() string {
	text, _ := m.MarshalText()
	return string(text)
}

// Load reads and parses the matrix file at path. A missing file is reported
// as wrapped ErrNotFound; other read and parse failures carry path context.
func Load(path string) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return m, nil
}

// Save writes the canonical encoding to path, truncating any existing file.
// Parent directories are the caller's responsibility.
func (m *Matrix) Save(path string) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	return os.WriteFile(path, text, savePerm)
}
