package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type cellKind int

const (
	cellMissing cellKind = iota
	cellNumber
	cellBool
	cellDate
	cellText
)

// cell is one classified value. text is the value as it appears in the
// source; b and t hold the parsed bool or date.
type cell struct {
	kind cellKind
	num  float64
	b    bool
	t    time.Time
	text string
}

const timestampLayout = "2006-01-02 15:04:05"

func boolText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func boolCell(b bool) cell {
	return cell{kind: cellBool, b: b, text: boolText(b)}
}

func dateCell(t time.Time) cell {
	return cell{kind: cellDate, t: t, text: t.Format(timestampLayout)}
}

// naTokens are strings read as missing, in addition to blank cells.
var naTokens = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

var dateLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
	"2006-01-02 15:04", "2006-01-02 15:04:05", "1/2/2006 15:04", "1/2/2006 15:04:05",
	"1/2/06", "1/2/06 15:04", "01-02-06", "2-Jan-06", "02-Jan-2006", "Jan-06",
}

func parseTimeMaybe(s string) (time.Time, bool) {
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseNumeric accepts plain decimal or scientific notation, allowing
// non-breaking spaces around the value.
func parseNumeric(s string) (float64, bool) {
	raw := strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// classify decides the type of one text value. Date parsing is applied only
// when dates is set; sources with typed cells pass false for string cells.
func classify(s string, dates bool) cell {
	v := strings.TrimSpace(s)
	if v == "" {
		return cell{kind: cellMissing}
	}
	if _, ok := naTokens[v]; ok {
		return cell{kind: cellMissing}
	}
	switch strings.ToUpper(v) {
	case "TRUE":
		return cell{kind: cellBool, b: true, text: v}
	case "FALSE":
		return cell{kind: cellBool, b: false, text: v}
	}
	if dates {
		if t, ok := parseTimeMaybe(v); ok {
			return cell{kind: cellDate, t: t, text: v}
		}
	}
	if x, ok := parseNumeric(v); ok {
		return cell{kind: cellNumber, num: x, text: v}
	}
	return cell{kind: cellText, text: v}
}

// columnHeaders fills blank names and suffixes duplicates with .1, .2, ...
func columnHeaders(header []string, width int) []string {
	names := make([]string, width)
	counts := make(map[string]int, width)
	used := make(map[string]struct{}, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		n := counts[base]
		for {
			if _, taken := used[name]; !taken {
				break
			}
			n++
			name = fmt.Sprintf("%s.%d", base, n)
		}
		counts[base] = n
		used[name] = struct{}{}
		names[i] = name
	}
	return names
}

// build turns a header plus classified body rows into typed columns.
func build(name string, header []string, body [][]cell) (*Table, error) {
	width := len(header)
	for _, r := range body {
		if len(r) > width {
			width = len(r)
		}
	}
	names := columnHeaders(header, width)
	cols := make([]Column, width)
	for j := 0; j < width; j++ {
		cells := make([]cell, len(body))
		for i, r := range body {
			if j < len(r) {
				cells[i] = r[j]
			}
		}
		cols[j] = inferColumn(names[j], cells)
	}
	return New(name, cols...)
}

func inferColumn(name string, cells []cell) Column {
	var nNum, nBool, nDate, nText int
	for _, c := range cells {
		switch c.kind {
		case cellNumber:
			nNum++
		case cellBool:
			nBool++
		case cellDate:
			nDate++
		case cellText:
			nText++
		}
	}
	present := nNum + nBool + nDate + nText
	if len(cells) > 0 && nNum == present {
		vals := make([]float64, len(cells))
		for i, c := range cells {
			if c.kind == cellNumber {
				vals[i] = c.num
			} else {
				vals[i] = math.NaN()
			}
		}
		return NewNumericColumn(name, "", vals)
	}
	dtype := DtypeObject
	switch {
	case present > 0 && nBool == present:
		dtype = DtypeBool
	case present > 0 && nDate == present:
		dtype = DtypeDatetime
	}
	vals := make([]string, len(cells))
	missing := make([]bool, len(cells))
	for i, c := range cells {
		missing[i] = c.kind == cellMissing
		switch {
		case missing[i]:
		case dtype == DtypeBool:
			vals[i] = boolText(c.b)
		case dtype == DtypeDatetime:
			vals[i] = c.t.Format(timestampLayout)
		default:
			// object columns keep the source text
			vals[i] = c.text
		}
	}
	return NewCategoricalColumn(name, dtype, vals, missing)
}

func blankRow(r []string) bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
