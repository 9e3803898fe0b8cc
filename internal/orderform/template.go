// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orderform

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/orderform/internal/deliverylist"
	"github.com/pdiddy/orderform/pkg/types"
)

// firstDataRow is where order rows start; row 1 belongs to the template header.
const firstDataRow = 2

// WriteTemplate opens the template workbook in r, writes rows into its
// active sheet starting at row 2, column 1, and returns the serialized
// workbook. The header row and existing formatting are left alone.
func WriteTemplate(r io.Reader, rows []types.OrderFormRow) ([]byte, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: template: %v", deliverylist.ErrUnreadableSpreadsheet, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		return nil, fmt.Errorf("%w: template has no active sheet", deliverylist.ErrUnreadableSpreadsheet)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, firstDataRow+i)
		if err != nil {
			return nil, err
		}
		values := []any(row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", firstDataRow+i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
