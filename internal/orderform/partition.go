// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orderform

import (
	"strings"

	"github.com/pdiddy/orderform/pkg/types"
)

// Matches reports whether productName contains any of keywords. The match
// is an exact, case-sensitive substring test. An empty product name never
// matches.
func Matches(productName string, keywords []string) bool {
	if productName == "" {
		return false
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(productName, kw) {
			return true
		}
	}
	return false
}

// Partition returns, for each category in order, the records whose product
// name matches it. Source order is kept within each subset. A record can
// appear in several subsets; records matching nothing appear in none.
func Partition(recs []types.DeliveryRecord, categories []types.Category) [][]types.DeliveryRecord {
	out := make([][]types.DeliveryRecord, len(categories))
	for _, rec := range recs {
		name := rec.ProductName()
		for i, c := range categories {
			if Matches(name, c.Keywords) {
				out[i] = append(out[i], rec)
			}
		}
	}
	return out
}

// countUnmatched returns how many records match no category.
func countUnmatched(recs []types.DeliveryRecord, categories []types.Category) int {
	n := 0
	for _, rec := range recs {
		matched := false
		for _, c := range categories {
			if Matches(rec.ProductName(), c.Keywords) {
				matched = true
				break
			}
		}
		if !matched {
			n++
		}
	}
	return n
}
