package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/domain"
	"github.com/Cristianojapa/pedido-rapido-catalao/internal/usecase"
)

// Client calls the backend order-creation endpoint. It implements the
// port used by the checkout workflow.
type Client struct {
	base    string
	hc      *http.Client
	timeout time.Duration
	ua      string
}

func NewClient(base string, timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		hc:      &http.Client{},
		timeout: timeout,
		ua:      userAgent,
	}
}

// Wire shape of the order endpoint (kept out of domain).
type orderItemReq struct {
	ProductID   string  `json:"product_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type createOrderReq struct {
	Store int64          `json:"store"`
	Items []orderItemReq `json:"items"`
}

type createOrderResp struct {
	ID json.Number `json:"id"`
}

func (c *Client) CreateOrder(ctx context.Context, payload domain.OrderPayload) (string, error) {
	// ensure per-call timeout if caller didn't set one
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body := createOrderReq{
		Store: payload.Store,
		Items: lo.Map(payload.Items, func(it domain.OrderItem, _ int) orderItemReq {
			return orderItemReq{
				ProductID:   it.ProductID,
				Description: it.Description,
				Quantity:    it.Quantity,
				Price:       it.Price.InexactFloat64(),
			}
		}),
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.base+"/api/public/orders/", bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("post order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("order endpoint returned %d", resp.StatusCode)
	}

	var out createOrderResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode order response: %w", err)
	}
	if out.ID == "" {
		return "", errors.New("order response missing id")
	}

	return out.ID.String(), nil
}

var _ usecase.OrderSubmitter = (*Client)(nil)
