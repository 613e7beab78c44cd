package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderItem is a value copy of one cart line taken at submission time.
type OrderItem struct {
	ProductID   string
	Description string
	Quantity    int
	Price       decimal.Decimal
}

// OrderPayload is the outbound order snapshot. It is built once per
// checkout attempt, so later cart mutations cannot touch an in-flight
// submission.
type OrderPayload struct {
	Store int64
	Items []OrderItem
}

func NewOrderPayload(storeID int64, lines []CartLine) OrderPayload {
	items := lo.Map(lines, func(l CartLine, _ int) OrderItem {
		return OrderItem{
			ProductID:   l.Product.ID,
			Description: l.Product.Description,
			Quantity:    l.Quantity,
			Price:       l.Product.Price,
		}
	})
	return OrderPayload{Store: storeID, Items: items}
}
