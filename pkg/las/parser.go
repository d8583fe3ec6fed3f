package las

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// DefaultNull is the conventional LAS missing-value sentinel, used when the
// well section declares no NULL mnemonic.
const DefaultNull = -999.25

// FormatError reports a structurally invalid LAS file: a required section is
// missing, a header line cannot be parsed, or a data token is not numeric.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("las: invalid format at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("las: invalid format: %s", e.Reason)
}

// InconsistentDataError reports a data row whose token count differs from the
// declared curve count.
type InconsistentDataError struct {
	Line int
	Want int
	Got  int
}

func (e *InconsistentDataError) Error() string {
	return fmt.Sprintf("las: inconsistent data at line %d: expected %d values per row, got %d", e.Line, e.Want, e.Got)
}

// Curve is one declared log curve with its samples. The depth index curve is
// not included here; it lives in File.Depths.
type Curve struct {
	Mnemonic    string
	Unit        string
	Description string
	Values      []float64
}

// File is the decoded content of a LAS file.
type File struct {
	WellName  string
	FieldName string
	Company   string
	Date      string

	// Declared depth range. StartDepth <= StopDepth regardless of the
	// logging direction in the source file; Step is the absolute declared
	// step (0 when the file declares none).
	StartDepth float64
	StopDepth  float64
	Step       float64
	DepthUnit  string
	NullValue  float64

	// Depths is the shared depth index; every curve's Values aligns 1:1
	// with it. Null sentinels in curve values are preserved as-is.
	Depths []float64
	Curves []Curve
}

// SampleCount returns the number of rows in the data section.
func (f *File) SampleCount() int {
	return len(f.Depths)
}

type headerLine struct {
	mnemonic    string
	unit        string
	value       string
	description string
}

// Parse decodes raw LAS text. It requires the version (~V), well (~W), curve
// (~C) and data (~A) sections; header sections it does not understand (~P,
// ~O) are skipped.
func Parse(raw []byte) (*File, error) {
	f := &File{
		DepthUnit: "M",
		NullValue: DefaultNull,
	}

	var (
		curveDefs []headerLine
		dataLines []string
		dataStart []int // source line number per data line
		wrap      bool

		sawVersion, sawWell, sawCurve, sawData bool
	)

	section := byte(0)
	lineNo := 0
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, "~") {
			if len(trimmed) < 2 {
				return nil, &FormatError{Line: lineNo, Reason: "empty section marker"}
			}
			section = upperByte(trimmed[1])
			switch section {
			case 'V':
				sawVersion = true
			case 'W':
				sawWell = true
			case 'C':
				sawCurve = true
			case 'A':
				sawData = true
			}
			continue
		}

		switch section {
		case 'V':
			h, err := parseHeaderLine(trimmed, lineNo)
			if err != nil {
				return nil, err
			}
			if strings.EqualFold(h.mnemonic, "WRAP") && strings.EqualFold(h.value, "YES") {
				wrap = true
			}
		case 'W':
			h, err := parseHeaderLine(trimmed, lineNo)
			if err != nil {
				return nil, err
			}
			if err := f.applyWellHeader(h, lineNo); err != nil {
				return nil, err
			}
		case 'C':
			h, err := parseHeaderLine(trimmed, lineNo)
			if err != nil {
				return nil, err
			}
			curveDefs = append(curveDefs, h)
		case 'A':
			dataLines = append(dataLines, trimmed)
			dataStart = append(dataStart, lineNo)
		default:
			// ~P, ~O and unknown sections are ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}

	switch {
	case !sawVersion:
		return nil, &FormatError{Reason: "missing version section (~V)"}
	case !sawWell:
		return nil, &FormatError{Reason: "missing well information section (~W)"}
	case !sawCurve:
		return nil, &FormatError{Reason: "missing curve definition section (~C)"}
	case !sawData:
		return nil, &FormatError{Reason: "missing data section (~A)"}
	}
	if len(curveDefs) < 2 {
		return nil, &FormatError{Reason: "curve section must declare the depth index and at least one curve"}
	}

	// First declared curve is the depth index (LAS convention).
	f.Curves = make([]Curve, len(curveDefs)-1)
	for i, def := range curveDefs[1:] {
		f.Curves[i] = Curve{
			Mnemonic:    def.mnemonic,
			Unit:        def.unit,
			Description: def.description,
		}
	}

	rows, err := collectRows(dataLines, dataStart, len(curveDefs), wrap)
	if err != nil {
		return nil, err
	}

	f.Depths = make([]float64, 0, len(rows))
	for i := range f.Curves {
		f.Curves[i].Values = make([]float64, 0, len(rows))
	}
	for _, row := range rows {
		f.Depths = append(f.Depths, row.values[0])
		for i := range f.Curves {
			f.Curves[i].Values = append(f.Curves[i].Values, row.values[i+1])
		}
	}

	if err := validateMonotonic(f.Depths, rows); err != nil {
		return nil, err
	}

	// Declarations in decreasing-depth files run stop-to-start; normalize so
	// StartDepth <= StopDepth always holds.
	if f.StartDepth > f.StopDepth {
		f.StartDepth, f.StopDepth = f.StopDepth, f.StartDepth
	}

	return f, nil
}

func (f *File) applyWellHeader(h headerLine, lineNo int) error {
	switch strings.ToUpper(h.mnemonic) {
	case "STRT":
		v, err := strconv.ParseFloat(h.value, 64)
		if err != nil {
			return &FormatError{Line: lineNo, Reason: "STRT is not numeric"}
		}
		f.StartDepth = v
		if h.unit != "" {
			f.DepthUnit = h.unit
		}
	case "STOP":
		v, err := strconv.ParseFloat(h.value, 64)
		if err != nil {
			return &FormatError{Line: lineNo, Reason: "STOP is not numeric"}
		}
		f.StopDepth = v
	case "STEP":
		v, err := strconv.ParseFloat(h.value, 64)
		if err != nil {
			return &FormatError{Line: lineNo, Reason: "STEP is not numeric"}
		}
		if v < 0 {
			v = -v
		}
		f.Step = v
	case "NULL":
		if v, err := strconv.ParseFloat(h.value, 64); err == nil {
			f.NullValue = v
		}
	case "WELL":
		f.WellName = headerText(h)
	case "FLD":
		f.FieldName = headerText(h)
	case "COMP":
		f.Company = headerText(h)
	case "DATE":
		f.Date = headerText(h)
	}
	return nil
}

// headerText picks the value slot, falling back to the description. LAS 1.2
// files put free-text well metadata in the description column.
func headerText(h headerLine) string {
	if h.value != "" {
		return h.value
	}
	return h.description
}

// parseHeaderLine decodes "MNEM.UNIT   VALUE : DESCRIPTION". The description
// delimiter is the last colon so that values containing ':' (times, ratios)
// survive.
func parseHeaderLine(line string, lineNo int) (headerLine, error) {
	dot := strings.Index(line, ".")
	if dot < 0 {
		return headerLine{}, &FormatError{Line: lineNo, Reason: "header line has no mnemonic delimiter"}
	}

	h := headerLine{mnemonic: strings.TrimSpace(line[:dot])}
	if h.mnemonic == "" {
		return headerLine{}, &FormatError{Line: lineNo, Reason: "header line has empty mnemonic"}
	}

	rest := line[dot+1:]
	if colon := strings.LastIndex(rest, ":"); colon >= 0 {
		h.description = strings.TrimSpace(rest[colon+1:])
		rest = rest[:colon]
	}

	// Unit runs from the dot to the first whitespace.
	if sp := strings.IndexFunc(rest, isSpace); sp >= 0 {
		h.unit = strings.TrimSpace(rest[:sp])
		h.value = strings.TrimSpace(rest[sp:])
	} else {
		h.unit = strings.TrimSpace(rest)
	}
	return h, nil
}

type dataRow struct {
	line   int
	values []float64
}

func collectRows(lines []string, lineNos []int, width int, wrap bool) ([]dataRow, error) {
	if !wrap {
		rows := make([]dataRow, 0, len(lines))
		for i, line := range lines {
			tokens := strings.Fields(line)
			if len(tokens) != width {
				return nil, &InconsistentDataError{Line: lineNos[i], Want: width, Got: len(tokens)}
			}
			row, err := parseRow(tokens, lineNos[i])
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return rows, nil
	}

	// Wrapped mode: accumulate tokens until a full row is available.
	var rows []dataRow
	var pending []string
	pendingLine := 0
	for i, line := range lines {
		if len(pending) == 0 {
			pendingLine = lineNos[i]
		}
		pending = append(pending, strings.Fields(line)...)
		for len(pending) >= width {
			row, err := parseRow(pending[:width], pendingLine)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
			pending = pending[width:]
			pendingLine = lineNos[i]
		}
	}
	if len(pending) != 0 {
		return nil, &InconsistentDataError{Line: pendingLine, Want: width, Got: len(pending)}
	}
	return rows, nil
}

func parseRow(tokens []string, lineNo int) (dataRow, error) {
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return dataRow{}, &FormatError{Line: lineNo, Reason: fmt.Sprintf("non-numeric data token %q", tok)}
		}
		values[i] = v
	}
	return dataRow{line: lineNo, values: values}, nil
}

// validateMonotonic checks that the depth index moves in one consistent
// direction. Irregular spacing is allowed; reversals and duplicates are not.
func validateMonotonic(depths []float64, rows []dataRow) error {
	if len(depths) < 2 {
		return nil
	}
	increasing := depths[1] > depths[0]
	for i := 1; i < len(depths); i++ {
		switch {
		case depths[i] == depths[i-1]:
			return &FormatError{Line: rows[i].line, Reason: "duplicate depth value"}
		case increasing && depths[i] < depths[i-1], !increasing && depths[i] > depths[i-1]:
			return &FormatError{Line: rows[i].line, Reason: "depth index is not monotonic"}
		}
	}
	return nil
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
