// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deliverylist reads an uploaded delivery-list workbook into
// DeliveryRecords. Headers are normalized by stripping whitespace and
// checked against the required column list before any row is read.
package deliverylist

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/orderform/pkg/types"
)

// ErrUnreadableSpreadsheet is returned when an upload cannot be opened as
// an xlsx workbook or has no readable sheet.
var ErrUnreadableSpreadsheet = errors.New("unreadable spreadsheet")

// MissingColumnsError reports required columns absent from the header row.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "DeliveryList에 필요한 컬럼이 없습니다: " + strings.Join(e.Columns, ", ")
}

// NormalizeHeader removes every whitespace rune from s.
func NormalizeHeader(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeHeaders applies NormalizeHeader to each cell of a header row.
func NormalizeHeaders(row []string) []string {
	out := make([]string, len(row))
	for i, h := range row {
		out[i] = NormalizeHeader(h)
	}
	return out
}

// Validate returns a *MissingColumnsError naming every entry of required
// absent from headers, in required order, or nil when all are present.
func Validate(headers, required []string) error {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}

	var missing []string
	for _, col := range required {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}

// Read opens the workbook in r and returns the records of its first sheet
// in source order. Row 1 is the header row. Fully blank rows are skipped.
func Read(r io.Reader) ([]types.DeliveryRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableSpreadsheet, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadableSpreadsheet)
	}

	sheet := sheets[0]
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", ErrUnreadableSpreadsheet, sheet, err)
	}

	var header []string
	if len(rows) > 0 {
		header = NormalizeHeaders(rows[0])
	}
	if err := Validate(header, types.RequiredColumns); err != nil {
		return nil, err
	}

	colIdx := buildColumnIndex(header)

	var records []types.DeliveryRecord
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rowNum := i + 2 // 1-indexed, skip header
		fields := make(map[string]string, len(colIdx))
		numeric := make(map[string]bool)
		for name, idx := range colIdx {
			if idx >= len(row) {
				continue
			}
			fields[name] = row[idx]
			if isNumericCell(f, sheet, idx+1, rowNum, row[idx]) {
				numeric[name] = true
			}
		}
		records = append(records, types.DeliveryRecord{
			Row:     rowNum,
			Fields:  fields,
			Numeric: numeric,
		})
	}
	return records, nil
}

// buildColumnIndex maps each non-empty header to its column index. When a
// header repeats, the first occurrence wins.
func buildColumnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if h == "" {
			continue
		}
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

// isNumericCell reports whether the cell at (col, row) holds a number.
// Numbers carry no type attribute or "n"; text cells (shared, inline or
// formula strings) keep their text even when it looks numeric, so postal
// codes stored as text keep their leading zeros.
func isNumericCell(f *excelize.File, sheet string, col, row int, raw string) bool {
	if raw == "" {
		return false
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return false
	}
	if typ != excelize.CellTypeNumber && typ != excelize.CellTypeUnset {
		return false
	}
	_, err = strconv.ParseFloat(raw, 64)
	return err == nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
