// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orderform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/orderform/pkg/types"
)

const (
	unitBoxCount = 1
	unitVolume   = 60
)

// orderFields holds the values a DeliveryRecord contributes to an order
// form. Optional source columns resolve to "" here and nowhere else.
// Numeric source cells stay numeric.
type orderFields struct {
	recipientName   any
	phone           any
	postalCode      any
	optionName      any
	quantity        any
	orderNumber     any
	address         any
	deliveryMessage any
	productCode     any
	ordererName     any
}

func resolveFields(rec types.DeliveryRecord) orderFields {
	return orderFields{
		recipientName:   rec.Value(types.ColRecipientName),
		phone:           rec.Value(types.ColBuyerPhone),
		postalCode:      rec.Value(types.ColPostalCode),
		optionName:      rec.Value(types.ColOptionName),
		quantity:        quantityValue(rec.Value(types.ColQuantity)),
		orderNumber:     rec.Value(types.ColOrderNumber),
		address:         rec.Value(types.ColAddress),
		deliveryMessage: rec.Value(types.ColDeliveryMessage),
		productCode:     rec.Value(types.ColProductCode),
		ordererName:     rec.Value(types.ColOrdererName),
	}
}

// MapRecord projects rec into the column layout l.
//
// Recipient layout: 수취인명, 수취인전화번호, 수취인이동통신, 수취인우편번호,
// 주문상품명, 상품모델, 수량.
//
// Order layout: 주문번호, 수취인명, 수취인전화번호, 수취인이동통신,
// 수취인우편번호, 수취인주소, 배송메세지, 주문상품명, 상품모델, 상품코드,
// 수량, 주문자명, 단위박스수, 단위부피.
func MapRecord(rec types.DeliveryRecord, l types.Layout) (types.OrderFormRow, error) {
	f := resolveFields(rec)
	switch l {
	case types.LayoutRecipient, "":
		return types.OrderFormRow{
			f.recipientName,
			f.phone,
			f.phone,
			f.postalCode,
			f.optionName,
			f.optionName,
			f.quantity,
		}, nil
	case types.LayoutOrder:
		return types.OrderFormRow{
			f.orderNumber,
			f.recipientName,
			f.phone,
			f.phone,
			f.postalCode,
			f.address,
			f.deliveryMessage,
			f.optionName,
			f.optionName,
			f.productCode,
			f.quantity,
			f.ordererName,
			unitBoxCount,
			unitVolume,
		}, nil
	default:
		return nil, fmt.Errorf("unknown layout %q: use %s or %s", l, types.LayoutRecipient, types.LayoutOrder)
	}
}

// MapRecords maps each record in order.
func MapRecords(recs []types.DeliveryRecord, l types.Layout) ([]types.OrderFormRow, error) {
	rows := make([]types.OrderFormRow, 0, len(recs))
	for _, rec := range recs {
		row, err := MapRecord(rec, l)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// quantityValue writes whole-number quantities typed as text as numbers so
// templates that sum the column keep working. Numeric cells pass through;
// other text is copied as is.
func quantityValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return n
}
