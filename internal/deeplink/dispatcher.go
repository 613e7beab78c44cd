package deeplink

import (
	"context"
	"log/slog"

	"github.com/Cristianojapa/pedido-rapido-catalao/internal/logging"
)

// Navigator performs the actual navigation. OpenWindow reports whether
// a new browsing context was really opened; a blocked popup comes back
// as handled=false without an error.
type Navigator interface {
	Redirect(ctx context.Context, url string) error
	OpenWindow(ctx context.Context, url string) (handled bool, err error)
}

// Dispatcher picks the navigation strategy per platform: mobile gets a
// same-context redirect, everything else a new window with a redirect
// fallback when the window is blocked.
type Dispatcher struct {
	classify Classifier
	nav      Navigator
	log      *slog.Logger
}

func New(classify Classifier, nav Navigator) *Dispatcher {
	return &Dispatcher{
		classify: classify,
		nav:      nav,
		log:      logging.New("deeplink"),
	}
}

// Dispatch makes one best-effort navigation attempt to url. Navigation
// problems are logged and absorbed, never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, userAgent, url string) {
	if d.classify.Mobile(userAgent) {
		if err := d.nav.Redirect(ctx, url); err != nil {
			d.log.Warn("redirect failed", "error", err)
		}
		return
	}

	handled, err := d.nav.OpenWindow(ctx, url)
	if handled && err == nil {
		return
	}
	if err != nil {
		d.log.Warn("open window failed, falling back to redirect", "error", err)
	}
	if err := d.nav.Redirect(ctx, url); err != nil {
		d.log.Warn("redirect fallback failed", "error", err)
	}
}
