package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CartLine pairs a product with a positive quantity. A quantity reaching
// zero removes the line; lines with quantity < 1 never exist.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is a read-only snapshot of one session's selection.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c Cart) Empty() bool { return len(c.Lines) == 0 }

func (c Cart) TotalItems() int {
	return lo.SumBy(c.Lines, func(l CartLine) int { return l.Quantity })
}

func (c Cart) TotalValue() decimal.Decimal {
	return lo.Reduce(c.Lines, func(acc decimal.Decimal, l CartLine, _ int) decimal.Decimal {
		return acc.Add(l.Subtotal())
	}, decimal.Zero)
}
