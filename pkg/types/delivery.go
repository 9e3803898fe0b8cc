// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"strconv"
)

// Delivery-list column names after header normalization.
const (
	ColRecipientName   = "수취인이름"
	ColBuyerPhone      = "구매자전화번호"
	ColPostalCode      = "우편번호"
	ColOptionName      = "등록옵션명"
	ColQuantity        = "구매수(수량)"
	ColProductName     = "등록상품명"
	ColOrderNumber     = "주문번호"
	ColAddress         = "수취인주소"
	ColDeliveryMessage = "배송메세지"
	ColProductCode     = "업체상품코드"
	ColOrdererName     = "구매자"
)

// RequiredColumns lists the delivery-list columns every upload must carry,
// in the order they are reported when missing.
var RequiredColumns = []string{
	ColRecipientName,
	ColBuyerPhone,
	ColPostalCode,
	ColOptionName,
	ColQuantity,
	ColProductName,
}

// DeliveryRecord is one data row of a delivery list, keyed by normalized
// header name. Cells absent from the source row are absent from Fields.
type DeliveryRecord struct {
	// Row is the 1-based row number in the source sheet.
	Row int `json:"row" yaml:"row"`

	// Fields maps normalized header to the raw (unformatted) cell text.
	Fields map[string]string `json:"fields" yaml:"fields"`

	// Numeric marks columns whose source cell held a number rather than text.
	Numeric map[string]bool `json:"numeric,omitempty" yaml:"numeric,omitempty"`
}

// Get returns the value of column col, or "" when absent.
func (r DeliveryRecord) Get(col string) string {
	return r.Fields[col]
}

// Value returns the cell of column col as written back to a workbook:
// int64 or float64 for numeric cells, the text otherwise, "" when absent.
func (r DeliveryRecord) Value(col string) any {
	s, ok := r.Fields[col]
	if !ok {
		return ""
	}
	if !r.Numeric[col] {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}

// ProductName returns the registered product name used for category matching.
func (r DeliveryRecord) ProductName() string {
	return r.Fields[ColProductName]
}

// OrderFormRow is one output row: cell values in column order starting at
// column 1.
type OrderFormRow []any
