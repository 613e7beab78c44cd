package http

import (
	"context"
	"errors"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/deeplink"
)

// Directive tells the frontend how to reach the deep link: "redirect"
// in the same tab or "open" in a new one.
type Directive struct {
	Action string `json:"action"`
	URL    string `json:"url"`
}

type directiveKey struct{}

// WithDirective returns a ctx carrying a Directive holder that the
// ResponseNavigator fills in during dispatch.
func WithDirective(ctx context.Context) (context.Context, *Directive) {
	d := &Directive{}
	return context.WithValue(ctx, directiveKey{}, d), d
}

func directiveFrom(ctx context.Context) *Directive {
	d, _ := ctx.Value(directiveKey{}).(*Directive)
	return d
}

// ResponseNavigator records the chosen navigation into the request's
// Directive holder; the browser performs it after reading the
// response. Opening a window is always reported as handled here, the
// popup-blocked fallback happens client-side.
type ResponseNavigator struct{}

func (ResponseNavigator) Redirect(ctx context.Context, url string) error {
	d := directiveFrom(ctx)
	if d == nil {
		return errors.New("no directive holder in context")
	}
	d.Action = "redirect"
	d.URL = url
	return nil
}

func (ResponseNavigator) OpenWindow(ctx context.Context, url string) (bool, error) {
	d := directiveFrom(ctx)
	if d == nil {
		return false, errors.New("no directive holder in context")
	}
	d.Action = "open"
	d.URL = url
	return true, nil
}

var _ deeplink.Navigator = ResponseNavigator{}
