package table

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(path string) bool {
	return hasExt(path, ".xlsx", ".xlsm", ".xltx", ".xltm")
}

// Load reads the first worksheet. The first row is the header.
func (xlsxLoader) Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	sheet := sheets[0]
	display, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	sr := &sheetReader{f: f, sheet: sheet, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		sr.date1904 = *props.Date1904
	}

	name := fmt.Sprintf("%s (sheet: %s)", filepath.Base(path), sheet)
	// skip leading blank rows to find the header
	start := 0
	for start < len(display) && blankRow(display[start]) {
		start++
	}
	if start >= len(display) {
		return New(name)
	}
	header := display[start]
	var body [][]cell
	for i := start + 1; i < len(display); i++ {
		row := display[i]
		if blankRow(row) {
			continue
		}
		var rawRow []string
		if i < len(raw) {
			rawRow = raw[i]
		}
		cells := make([]cell, len(row))
		for j, v := range row {
			rv := v
			if j < len(rawRow) {
				rv = rawRow[j]
			}
			cells[j] = sr.classify(i, j, v, rv)
		}
		body = append(body, cells)
	}
	return build(name, header, body)
}

// sheetReader classifies cells from their stored type and number format.
type sheetReader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

// classify types the cell at zero-based row i, column j. display is the
// formatted text, raw the stored value.
func (r *sheetReader) classify(i, j int, display, raw string) cell {
	v := strings.TrimSpace(display)
	if v == "" && strings.TrimSpace(raw) == "" {
		return cell{kind: cellMissing}
	}
	ref, err := excelize.CoordinatesToCellName(j+1, i+1)
	if err != nil {
		return classify(display, false)
	}
	typ, err := r.f.GetCellType(r.sheet, ref)
	if err != nil {
		return classify(display, false)
	}
	switch typ {
	case excelize.CellTypeBool:
		return boolCell(raw == "1" || strings.EqualFold(raw, "TRUE"))
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return dateCell(t)
		}
		return classify(display, false)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		// text cells never become dates
		return classify(display, false)
	}
	x, ok := parseNumeric(raw)
	if !ok {
		return classify(display, false)
	}
	if r.dateStyled(ref) {
		if t, err := excelize.ExcelDateToTime(x, r.date1904); err == nil {
			return dateCell(t)
		}
	}
	return cell{kind: cellNumber, num: x, text: v}
}

// dateStyled reports whether the cell's number format renders a date or time.
func (r *sheetReader) dateStyled(ref string) bool {
	id, err := r.f.GetCellStyle(r.sheet, ref)
	if err != nil {
		return false
	}
	if is, ok := r.dateStyles[id]; ok {
		return is
	}
	is := false
	if st, err := r.f.GetStyle(id); err == nil && st != nil {
		is = isDateStyle(st)
	}
	r.dateStyles[id] = is
	return is
}

func isDateStyle(st *excelize.Style) bool {
	if st.CustomNumFmt != nil && *st.CustomNumFmt != "" {
		return isDateFormatCode(*st.CustomNumFmt)
	}
	return isBuiltinDateFmt(st.NumFmt)
}

// isBuiltinDateFmt covers the built-in date and time formats (14-22, 45-47).
func isBuiltinDateFmt(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 45 && id <= 47)
}

// isDateFormatCode reports whether a custom format code contains a date or
// time token outside quoted or escaped text. Bracketed sections are skipped
// unless they hold an elapsed time such as [h].
func isDateFormatCode(code string) bool {
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch c {
		case '"':
			end := strings.IndexByte(code[i+1:], '"')
			if end < 0 {
				return false
			}
			i += end + 1
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(code[i+1:], ']')
			if end < 0 {
				return false
			}
			switch strings.ToLower(code[i+1 : i+1+end]) {
			case "h", "hh", "m", "mm", "s", "ss":
				return true
			}
			i += end + 1
		case ';':
			// only the first section formats positive numbers
			return false
		case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
			return true
		}
	}
	return false
}

var isoDateLayouts = []string{
	time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02",
}

func parseISODate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, l := range isoDateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return parseTimeMaybe(s)
}
