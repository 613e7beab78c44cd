package whatsapp_test

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/domain"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/money"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/whatsapp"
)

func sampleLines() []domain.CartLine {
	return []domain.CartLine{
		{
			Product: domain.Product{
				ID:          "prod-a",
				Description: "Capa iPhone 12",
				Price:       decimal.RequireFromString("10.00"),
			},
			Quantity: 2,
		},
		{
			Product: domain.Product{
				ID:          "prod-b",
				Description: "Película 3D",
				Price:       decimal.RequireFromString("5.50"),
			},
			Quantity: 1,
		},
	}
}

func TestMessage_WithOrderID(t *testing.T) {
	b := whatsapp.NewBuilder("Cristianojapa", "5511952960701")

	got := b.Message(sampleLines(), "CENTER PEÇAS - CATALÃO", "7")

	want := strings.Join([]string{
		"🛒 *Pedido #7 - Cristianojapa*",
		"📍 Loja: CENTER PEÇAS - CATALÃO",
		"",
		"*Itens do pedido:*",
		"1. Capa iPhone 12",
		"   Qtd: 2 x R$ 10,00 = R$ 20,00",
		"",
		"2. Película 3D",
		"   Qtd: 1 x R$ 5,50 = R$ 5,50",
		"",
		strings.Repeat("─", 30),
		"*TOTAL: R$ 25,50*",
		"",
		"_Mensagem gerada pelo catálogo online_",
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("message mismatch (-want +got):\n%s", diff)
	}
}

func TestMessage_WithoutOrderID(t *testing.T) {
	b := whatsapp.NewBuilder("Cristianojapa", "5511952960701")

	got := b.Message(sampleLines(), "CENTER PEÇAS - CATALÃO", "")

	assert.True(t, strings.HasPrefix(got, "🛒 *Pedido - Cristianojapa*\n"))
	assert.NotContains(t, got, "#")
}

func TestMessage_Deterministic(t *testing.T) {
	b := whatsapp.NewBuilder("Cristianojapa", "5511952960701")
	lines := sampleLines()

	assert.Equal(t,
		b.Message(lines, "Loja A", "42"),
		b.Message(lines, "Loja A", "42"))
}

// The rendered total must equal the sum of quantity x unit price over
// all lines, whatever the lines are.
func TestMessage_TotalMatchesLineSum(t *testing.T) {
	b := whatsapp.NewBuilder("Cristianojapa", "5511952960701")
	faker := gofakeit.New(1)

	for range 20 {
		n := faker.IntRange(1, 8)
		lines := make([]domain.CartLine, 0, n)
		want := decimal.Zero

		for i := 0; i < n; i++ {
			price := decimal.NewFromFloat(faker.Price(0.5, 5000)).Round(2)
			qty := faker.IntRange(1, 9)
			lines = append(lines, domain.CartLine{
				Product: domain.Product{
					ID:          fmt.Sprintf("p-%d", i),
					Description: faker.ProductName(),
					Price:       price,
				},
				Quantity: qty,
			})
			want = want.Add(price.Mul(decimal.NewFromInt(int64(qty))))
		}

		msg := b.Message(lines, "Loja", "")
		assert.Contains(t, msg, "*TOTAL: "+money.Format(want)+"*")
	}
}

func TestLink(t *testing.T) {
	b := whatsapp.NewBuilder("Cristianojapa", "5511952960701")

	link := b.Link("pedido: 2 x R$ 10,00")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/5511952960701", u.Path)
	assert.Equal(t, "pedido: 2 x R$ 10,00", u.Query().Get("text"))
}
