// Package app composes the application: configuration, persistence, the
// notification surface, and the four stores, constructed once at startup
// and handed to the front-end. This is the provider composition of the
// system: every dependency is injected explicitly through constructors,
// never reached through a package-level global, which keeps each store
// testable in isolation.
package app

import (
	"log/slog"

	"github.com/syedOmegaPrime/SolitudeFinalProject/auth"
	"github.com/syedOmegaPrime/SolitudeFinalProject/cart"
	"github.com/syedOmegaPrime/SolitudeFinalProject/catalog"
	"github.com/syedOmegaPrime/SolitudeFinalProject/checkout"
	"github.com/syedOmegaPrime/SolitudeFinalProject/config"
	"github.com/syedOmegaPrime/SolitudeFinalProject/forum"
	"github.com/syedOmegaPrime/SolitudeFinalProject/localstore"
	"github.com/syedOmegaPrime/SolitudeFinalProject/notify"
)

// App owns the wired services. Fields are exported so the front-end (and
// tests) consume whichever stores they need, the way nested providers
// expose their contexts to a UI tree.
type App struct {
	Config   *config.AppConfig
	Logger   *slog.Logger
	Store    *localstore.Store
	Notifier notify.Notifier
	// Broadcaster is set when the default notifier is in use, so front-ends
	// can subscribe for toast rendering. It is nil when a custom Notifier
	// was injected.
	Broadcaster *notify.Broadcaster

	Auth     *auth.Service
	Catalog  *catalog.Service
	Cart     *cart.Service
	Forum    *forum.Service
	Checkout *checkout.Service
}

// options collects the injectable pieces tests commonly replace.
type options struct {
	logger   *slog.Logger
	notifier notify.Notifier
}

// Option customizes construction.
type Option func(*options)

// WithLogger injects a logger; defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithNotifier injects a notification sink, replacing the default
// broadcaster. Tests use this with notify.NewRecorder().
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// New wires the whole application from cfg. Construction order follows the
// dependency direction: storage first, then the notifier, then each store,
// then checkout on top of the cart.
func New(cfg *config.AppConfig, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	store, err := localstore.New(cfg.Storage.DataDir, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Logger: logger,
		Store:  store,
	}

	if o.notifier != nil {
		a.Notifier = o.notifier
	} else {
		buffer := 0
		if cfg.Notify != nil {
			buffer = cfg.Notify.BufferSize
		}
		a.Broadcaster = notify.NewBroadcaster(logger, buffer)
		a.Notifier = a.Broadcaster
	}

	if a.Auth, err = auth.NewService(store, *cfg.Auth, logger); err != nil {
		return nil, err
	}
	if a.Catalog, err = catalog.NewService(store, logger); err != nil {
		return nil, err
	}
	if a.Cart, err = cart.NewService(store, a.Notifier, logger); err != nil {
		return nil, err
	}
	if a.Forum, err = forum.NewService(store, logger); err != nil {
		return nil, err
	}
	a.Checkout = checkout.NewService(a.Cart, a.Notifier, *cfg.Checkout, logger)

	return a, nil
}
