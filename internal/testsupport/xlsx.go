// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package testsupport builds small xlsx workbooks in memory for tests.
package testsupport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/orderform/pkg/types"
)

// DeliveryHeader is a delivery-list header row carrying every required and
// optional column, with the spacing seen in real exports.
var DeliveryHeader = []string{
	"주문번호", "수취인 이름", "구매자 전화번호", "우편번호", "수취인 주소",
	"배송메세지", "등록상품명", "등록옵션명", "구매수(수량)", "업체상품코드", "구매자",
}

// DeliveryRow builds a row matching DeliveryHeader.
func DeliveryRow(orderNo, recipient, phone, postal, product, option, qty string) []string {
	return []string{
		orderNo, recipient, phone, postal, "경북 의성군 1-" + orderNo,
		"문 앞", product, option, qty, "P-" + orderNo, "구매자" + orderNo,
	}
}

// Workbook writes rows into the first sheet of a new workbook and returns
// the serialized bytes.
func Workbook(t *testing.T, rows ...[]string) []byte {
	t.Helper()
	return Build(t, func(f *excelize.File, sheet string) {
		for i, row := range rows {
			cells := make([]any, len(row))
			for j, v := range row {
				cells[j] = v
			}
			SetRow(t, f, sheet, i+1, cells...)
		}
	})
}

// Build hands a new workbook and its first sheet name to fill, then
// returns the serialized bytes.
func Build(t *testing.T, fill func(f *excelize.File, sheet string)) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	fill(f, f.GetSheetName(0))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// SetRow writes cells into row (1-based) starting at column A.
func SetRow(t *testing.T, f *excelize.File, sheet string, row int, cells ...any) {
	t.Helper()
	cell, err := excelize.CoordinatesToCellName(1, row)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
}

// NumericDeliveryList returns a delivery list whose order number and
// quantity are number cells, the quantity shown with the "#,##0" format,
// and whose postal code is zero-padded text.
func NumericDeliveryList(t *testing.T, orderNo int64, qty int) []byte {
	t.Helper()
	return Build(t, func(f *excelize.File, sheet string) {
		header := make([]any, len(DeliveryHeader))
		for i, h := range DeliveryHeader {
			header[i] = h
		}
		SetRow(t, f, sheet, 1, header...)
		SetRow(t, f, sheet, 2,
			orderNo, "홍길동", "010-1111-2222", "01234", "경북 의성군",
			"문 앞", "신틸라", "4kg", qty, "P-1", "김구매")

		thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3})
		require.NoError(t, err)
		require.NoError(t, f.SetCellStyle(sheet, "I2", "I2", thousands))
	})
}

// Template returns a template workbook whose active sheet is named sheet and
// holds header in row 1. A decoy first sheet is added when sheet differs
// from the default, so tests can tell the active sheet apart.
func Template(t *testing.T, sheet string, header []string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != f.GetSheetName(0) {
		idx, err := f.NewSheet(sheet)
		require.NoError(t, err)
		f.SetActiveSheet(idx)
	}

	cells := make([]any, len(header))
	for i, v := range header {
		cells[i] = v
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &cells))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// RecipientHeader is the header row of a 7-column order-form template.
var RecipientHeader = []string{"수취인명", "수취인전화번호", "수취인이동통신", "수취인우편번호", "주문상품명", "상품모델", "수량"}

// SheetRows returns all rows of the named sheet (or the active sheet when
// sheet is empty) of the workbook in data.
func SheetRows(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

// Record builds a DeliveryRecord from column/value pairs.
func Record(row int, kv ...string) types.DeliveryRecord {
	fields := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}
	return types.DeliveryRecord{Row: row, Fields: fields}
}
