package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/domain"
)

// Client reads the public catalog service. The query semantics behind
// these endpoints are opaque to us; this is a plain passthrough.
type Client struct {
	base    string
	hc      *http.Client
	timeout time.Duration
}

func NewClient(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		hc:      &http.Client{},
		timeout: timeout,
	}
}

// ProductQuery narrows a product listing. Zero ids and an empty search
// mean "no filter", matching the frontend's query string behavior.
type ProductQuery struct {
	Group    int64
	Brand    int64
	Category int64
	Color    int64
	Search   string
}

type Page struct {
	Store    domain.Store     `json:"store"`
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

type Filter struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Filters struct {
	Groups     []Filter `json:"groups"`
	Brands     []Filter `json:"brands"`
	Categories []Filter `json:"categories"`
	Colors     []Filter `json:"colors"`
}

func (c *Client) GetStores(ctx context.Context) ([]domain.Store, error) {
	var stores []domain.Store
	if err := c.get(ctx, "/api/public/catalog/stores/", nil, &stores); err != nil {
		return nil, fmt.Errorf("get stores: %w", err)
	}
	return stores, nil
}

func (c *Client) GetProducts(ctx context.Context, storeID int64, q ProductQuery) (Page, error) {
	params := url.Values{}
	params.Set("store", strconv.FormatInt(storeID, 10))
	if q.Group > 0 {
		params.Set("group", strconv.FormatInt(q.Group, 10))
	}
	if q.Brand > 0 {
		params.Set("brand", strconv.FormatInt(q.Brand, 10))
	}
	if q.Category > 0 {
		params.Set("category", strconv.FormatInt(q.Category, 10))
	}
	if q.Color > 0 {
		params.Set("color", strconv.FormatInt(q.Color, 10))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	var page Page
	if err := c.get(ctx, "/api/public/catalog/", params, &page); err != nil {
		return Page{}, fmt.Errorf("get products: %w", err)
	}
	return page, nil
}

func (c *Client) GetFilters(ctx context.Context, storeID int64) (Filters, error) {
	params := url.Values{}
	params.Set("store", strconv.FormatInt(storeID, 10))

	var filters Filters
	if err := c.get(ctx, "/api/public/catalog/filters/", params, &filters); err != nil {
		return Filters{}, fmt.Errorf("get filters: %w", err)
	}
	return filters, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.base + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
