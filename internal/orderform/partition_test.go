// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orderform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/orderform/internal/testsupport"
	"github.com/pdiddy/orderform/pkg/types"
)

func TestMatches(t *testing.T) {
	common := []string{"천도복숭아", "신비복숭아", "신틸라"}
	tests := []struct {
		name    string
		product string
		want    bool
	}{
		{"천도복숭아", "경북 천도복숭아 2kg", true},
		{"신비복숭아", "신비복숭아세트", true},
		{"신틸라", "신틸라 4.5kg", true},
		{"no match", "사과", false},
		{"empty product name", "", false},
		{"spacing breaks match", "신비 복숭아", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.product, common))
		})
	}
}

func TestMatches_CaseSensitive(t *testing.T) {
	assert.True(t, Matches("Peach box", []string{"Peach"}))
	assert.False(t, Matches("peach box", []string{"Peach"}))
}

func TestPartition(t *testing.T) {
	recs := []types.DeliveryRecord{
		testsupport.Record(2, types.ColProductName, "의성프리미엄신비복숭아천도복숭아"),
		testsupport.Record(3, types.ColProductName, "신비복숭아세트"),
		testsupport.Record(4, types.ColProductName, "사과"),
		testsupport.Record(5),
		testsupport.Record(6, types.ColProductName, "천도복숭아"),
	}

	got := Partition(recs, types.DefaultCategories())

	assert.Equal(t, []int{2, 3, 6}, rowNumbers(got[0]), "common keeps source order")
	assert.Equal(t, []int{2}, rowNumbers(got[1]))
	assert.Equal(t, 2, countUnmatched(recs, types.DefaultCategories()))
}

func TestPartition_Empty(t *testing.T) {
	got := Partition(nil, types.DefaultCategories())
	assert.Len(t, got, 2)
	assert.Empty(t, got[0])
	assert.Empty(t, got[1])
}

func rowNumbers(recs []types.DeliveryRecord) []int {
	var out []int
	for _, r := range recs {
		out = append(out, r.Row)
	}
	return out
}
