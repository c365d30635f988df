// SPDX-License-Identifier: MIT
// Package: export
//
// parse.go — pasted text → grid.
//
// Accepted forms:
//   - np.array([[1, 2], [3, 4]], dtype=np.int32) and array(...) reprs
//   - nested lists: [[1, 2], [3, 4]] (innermost brackets are rows)
//   - bare rows: one row per line, values split on commas, semicolons or
//     whitespace
//
// Integral floats ("2.0", "2.") are accepted as integers.

package export

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/convlab/grid"
)

var (
	reArrayCall = regexp.MustCompile(`^(?:np\.|numpy\.)?array\s*\(`)
	reDtype     = regexp.MustCompile(`,?\s*dtype\s*=\s*[\w.]+`)
)

// Parse converts pasted text into a grid.
// Errors: ErrEmptyText, ErrNonNumeric, ErrRaggedRows; messages name the
// offending row (1-based) and token.
func Parse(text string) (*grid.Grid, error) {
	body := stripArrayCall(strings.TrimSpace(text))

	var (
		rawRows [][]string
		err     error
	)
	if strings.ContainsAny(body, "[]") {
		rawRows, err = bracketRows(body)
	} else {
		rawRows = lineRows(body)
	}
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if len(rawRows) == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrEmptyText)
	}

	values := make([][]int, len(rawRows))
	for i, toks := range rawRows {
		if len(toks) != len(rawRows[0]) {
			return nil, fmt.Errorf("Parse: row %d has %d values, row 1 has %d: %w",
				i+1, len(toks), len(rawRows[0]), ErrRaggedRows)
		}
		row := make([]int, len(toks))
		for j, tok := range toks {
			v, ok := parseInt(tok)
			if !ok {
				return nil, fmt.Errorf("Parse: row %d, column %d: %q: %w", i+1, j+1, tok, ErrNonNumeric)
			}
			row[j] = v
		}
		values[i] = row
	}
	if len(values[0]) == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrEmptyText)
	}

	g, err := grid.FromRows(values)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return g, nil
}

// ParseShape parses text and requires a rows×cols result.
// Errors: those of Parse, plus ErrShapeMismatch.
func ParseShape(text string, rows, cols int) (*grid.Grid, error) {
	g, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if r, c := g.Shape(); r != rows || c != cols {
		return nil, fmt.Errorf("ParseShape: got %d×%d, want %d×%d: %w", r, c, rows, cols, ErrShapeMismatch)
	}

	return g, nil
}

func stripArrayCall(s string) string {
	loc := reArrayCall.FindStringIndex(s)
	if loc == nil {
		return s
	}
	s = strings.TrimSpace(s[loc[1]:])
	s = strings.TrimSuffix(s, ")")

	return strings.TrimSpace(reDtype.ReplaceAllString(s, ""))
}

// bracketRows collects the contents of innermost [...] groups. Text between
// groups may only be separators, a group holds either values or nested
// groups but not both, and every row closes at the same depth.
func bracketRows(s string) ([][]string, error) {
	var (
		rows     [][]string
		depth    int
		rowDepth int
		start    = -1
	)
	for i, ch := range s {
		switch ch {
		case '[':
			if start >= 0 {
				if toks := splitValues(s[start:i]); len(toks) > 0 {
					return nil, fmt.Errorf("row %d: %q beside a nested list: %w", len(rows)+1, toks[0], ErrNonNumeric)
				}
			}
			depth++
			start = i + 1
		case ']':
			if depth == 0 {
				return nil, fmt.Errorf("unbalanced ']' at offset %d: %w", i, ErrNonNumeric)
			}
			if start >= 0 {
				if rowDepth == 0 {
					rowDepth = depth
				} else if depth != rowDepth {
					return nil, fmt.Errorf("row %d: nested %d deep, row 1 is %d deep: %w",
						len(rows)+1, depth, rowDepth, ErrNonNumeric)
				}
				rows = append(rows, splitValues(s[start:i]))
				start = -1
			}
			depth--
		default:
			if start < 0 && !isSeparator(ch) {
				return nil, fmt.Errorf("row %d: %q outside brackets: %w", len(rows)+1, string(ch), ErrNonNumeric)
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced '[': %w", ErrNonNumeric)
	}

	return rows, nil
}

func lineRows(s string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(s, "\n") {
		if toks := splitValues(line); len(toks) > 0 {
			rows = append(rows, toks)
		}
	}

	return rows
}

func splitValues(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

func isSeparator(ch rune) bool {
	switch ch {
	case ',', ';', ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

// parseInt accepts decimal integers and integral floats that fit in int.
func parseInt(tok string) (int, bool) {
	v, err := strconv.Atoi(tok)
	if err == nil {
		return v, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	// -MinInt is a power of two, so both bounds are exact in float64.
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return 0, false
	}

	return int(f), true
}
