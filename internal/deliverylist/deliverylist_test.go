// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deliverylist

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/orderform/internal/testsupport"
	"github.com/pdiddy/orderform/pkg/types"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"수취인 이름", "수취인이름"},
		{" 구매자 전화번호 ", "구매자전화번호"},
		{"구매수 (수량)", "구매수(수량)"},
		{"등록\t상품명\n", "등록상품명"},
		{"우편 번호", "우편번호"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeader(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeHeaders_Empty(t *testing.T) {
	assert.Empty(t, NormalizeHeaders(nil))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{
			name:    "all present",
			headers: append([]string{"주문번호"}, types.RequiredColumns...),
		},
		{
			name:    "missing two reported in required order",
			headers: []string{"등록상품명", "수취인이름", "구매수(수량)", "등록옵션명"},
			want:    []string{"구매자전화번호", "우편번호"},
		},
		{
			name:    "empty header row",
			headers: nil,
			want:    types.RequiredColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.headers, types.RequiredColumns)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			var missing *MissingColumnsError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.want, missing.Columns)
			assert.Contains(t, err.Error(), strings.Join(tt.want, ", "))
		})
	}
}

func TestRead(t *testing.T) {
	data := testsupport.Workbook(t,
		testsupport.DeliveryHeader,
		testsupport.DeliveryRow("1001", "홍길동", "010-1111-2222", "37300", "신비복숭아세트", "2kg", "2"),
		[]string{},
		testsupport.DeliveryRow("1002", "김철수", "010-3333-4444", "01234", "사과", "5kg", "1"),
	)

	records, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, 2, first.Row)
	assert.Equal(t, "홍길동", first.Get(types.ColRecipientName))
	assert.Equal(t, "010-1111-2222", first.Get(types.ColBuyerPhone))
	assert.Equal(t, "신비복숭아세트", first.ProductName())
	assert.Equal(t, "2", first.Get(types.ColQuantity))

	second := records[1]
	assert.Equal(t, 4, second.Row, "blank row 3 is skipped but numbering is kept")
	assert.Equal(t, "01234", second.Get(types.ColPostalCode))
}

func TestRead_ShortRowLeavesFieldsAbsent(t *testing.T) {
	data := testsupport.Workbook(t,
		[]string{"수취인이름", "구매자전화번호", "우편번호", "등록옵션명", "구매수(수량)", "등록상품명"},
		[]string{"홍길동", "010", "37300", "2kg", "1"},
	)

	records, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	_, ok := records[0].Fields[types.ColProductName]
	assert.False(t, ok)
	assert.Equal(t, "", records[0].ProductName())
}

func TestRead_DuplicateHeaderFirstWins(t *testing.T) {
	data := testsupport.Workbook(t,
		[]string{"수취인이름", "구매자전화번호", "우편번호", "등록옵션명", "구매수(수량)", "등록상품명", "등록 상품명"},
		[]string{"홍길동", "010", "37300", "2kg", "1", "신틸라", "사과"},
	)

	records, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "신틸라", records[0].ProductName())
}

func TestRead_MissingColumns(t *testing.T) {
	data := testsupport.Workbook(t,
		[]string{"수취인 이름", "우편번호", "등록상품명"},
		[]string{"홍길동", "37300", "신틸라"},
	)

	_, err := Read(bytes.NewReader(data))
	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"구매자전화번호", "등록옵션명", "구매수(수량)"}, missing.Columns)
}

func TestRead_Unreadable(t *testing.T) {
	_, err := Read(strings.NewReader("not a workbook"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadableSpreadsheet))
}

func TestRead_NumericCellsKeepRawValue(t *testing.T) {
	data := testsupport.NumericDeliveryList(t, 20000123456789, 1000)

	records, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	rec := records[0]

	assert.Equal(t, "1000", rec.Get(types.ColQuantity), "number format is not applied")
	assert.Equal(t, int64(1000), rec.Value(types.ColQuantity))
	assert.Equal(t, int64(20000123456789), rec.Value(types.ColOrderNumber))
	assert.True(t, rec.Numeric[types.ColOrderNumber])

	assert.Equal(t, "01234", rec.Value(types.ColPostalCode), "text postal code keeps its leading zero")
	assert.False(t, rec.Numeric[types.ColPostalCode])
	assert.Equal(t, "010-1111-2222", rec.Value(types.ColBuyerPhone))
}
