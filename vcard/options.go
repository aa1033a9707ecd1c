package vcard

import (
	"io"
	"log/slog"
	"time"

	"github.com/cyp0633/libvdir/idgen"
)

type config struct {
	prodID string
	ids    idgen.Generator
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Parse or Generate call.
type Option func(*config)

// WithProdID sets the PRODID property emitted on generated records.
func WithProdID(prodID string) Option {
	return func(c *config) { c.prodID = prodID }
}

// WithIDGenerator replaces the UID generator used when an input record
// carries no UID.
func WithIDGenerator(g idgen.Generator) Option {
	return func(c *config) { c.ids = g }
}

// WithClock replaces the time source used for the REV property. Intended
// for tests and deterministic exports.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// WithLogger sets the logger for debug-level diagnostics (skipped unknown
// properties, dropped fields). The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func newConfig(opts []Option) config {
	c := config{
		ids:    idgen.UUID{},
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
