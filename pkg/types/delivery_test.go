// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryRecordValue(t *testing.T) {
	rec := DeliveryRecord{
		Fields: map[string]string{
			ColOrderNumber: "20000123456789",
			ColQuantity:    "2.5",
			ColPostalCode:  "01234",
			ColOptionName:  "12abc",
		},
		Numeric: map[string]bool{
			ColOrderNumber: true,
			ColQuantity:    true,
			ColOptionName:  true,
		},
	}

	tests := []struct {
		col  string
		want any
	}{
		{ColOrderNumber, int64(20000123456789)},
		{ColQuantity, 2.5},
		{ColPostalCode, "01234"},
		{ColOptionName, "12abc"},
		{ColAddress, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rec.Value(tt.col), "column %s", tt.col)
	}
}
