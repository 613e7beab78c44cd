package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/domain"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/money"
)

const separatorWidth = 30

// Builder renders order messages and wa.me deep links. Brand is the
// storefront name shown in every header; Number is the destination
// phone in international format, digits only.
type Builder struct {
	brand  string
	number string
}

func NewBuilder(brand, number string) *Builder {
	return &Builder{brand: brand, number: number}
}

// Message renders the outbound order text. Deterministic: the same
// lines, store name and order id always produce the same string. The
// order id is the only branching point; when absent the header stays
// generic.
func (b *Builder) Message(lines []domain.CartLine, storeName, orderID string) string {
	header := fmt.Sprintf("🛒 *Pedido - %s*", b.brand)
	if orderID != "" {
		header = fmt.Sprintf("🛒 *Pedido #%s - %s*", orderID, b.brand)
	}

	out := []string{
		header,
		fmt.Sprintf("📍 Loja: %s", storeName),
		"",
		"*Itens do pedido:*",
	}

	total := decimal.Zero
	for i, line := range lines {
		subtotal := line.Subtotal()
		total = total.Add(subtotal)
		out = append(out,
			fmt.Sprintf("%d. %s", i+1, line.Product.Description),
			fmt.Sprintf("   Qtd: %d x %s = %s",
				line.Quantity, money.Format(line.Product.Price), money.Format(subtotal)),
			"",
		)
	}

	out = append(out,
		strings.Repeat("─", separatorWidth),
		fmt.Sprintf("*TOTAL: %s*", money.Format(total)),
		"",
		"_Mensagem gerada pelo catálogo online_",
	)

	return strings.Join(out, "\n")
}

// Link wraps msg into a wa.me deep link that opens WhatsApp with the
// text prefilled.
func (b *Builder) Link(msg string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + b.number,
		RawQuery: "text=" + url.QueryEscape(msg),
	}
	return u.String()
}
