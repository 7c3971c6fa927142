package morphed

import (
	"log/slog"

	"github.com/vango-dev/morphed/pkg/morph"
	"github.com/vango-dev/morphed/pkg/vdom"
)

// Config holds the resolved settings of a view. It is fixed at
// construction.
type Config struct {
	// Clone selects clone mode (true) or pure mode (false).
	// Default: true
	Clone bool

	// IgnoredAttribute marks subtrees that are never reconciled.
	// Default: DefaultIgnoredAttribute
	IgnoredAttribute string

	// InitialState seeds the view's state. It is copied.
	// Default: empty
	InitialState State

	// Morph is passed through to the reconciliation engine. Caller
	// OnBeforeElUpdated and OnBeforeNodeDiscarded hooks are composed with
	// the ignore check: they only see nodes the check lets through, and
	// their false is honoured.
	Morph morph.Options

	// IDs generates identifiers for ignored elements in clone mode.
	// Default: a counter producing "morphed-1", "morphed-2", ...
	IDs vdom.IDSource

	// Logger is the structured logger for the view.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Observers receive a report after every pass.
	Observers []Observer
}

// Option configures a view.
type Option func(*Config)

// WithClone selects clone mode (true, the default) or pure mode (false).
func WithClone(clone bool) Option {
	return func(c *Config) {
		c.Clone = clone
	}
}

// WithIgnoredAttribute overrides the attribute that marks ignored subtrees.
func WithIgnoredAttribute(name string) Option {
	return func(c *Config) {
		c.IgnoredAttribute = name
	}
}

// WithInitialState seeds the view's state.
func WithInitialState(state State) Option {
	return func(c *Config) {
		c.InitialState = state
	}
}

// WithMorphOptions sets the options passed to the reconciliation engine.
//
// The ignore check runs before opts.OnBeforeElUpdated, which is only called
// for pairs whose live element is not ignored. Returning false from it
// vetoes the pair: the live element and its subtree are left untouched, as
// if it were ignored. opts.OnBeforeNodeDiscarded is composed the same way.
func WithMorphOptions(opts morph.Options) Option {
	return func(c *Config) {
		c.Morph = opts
	}
}

// WithIDGenerator sets the source of ids for ignored elements.
func WithIDGenerator(ids vdom.IDSource) Option {
	return func(c *Config) {
		c.IDs = ids
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithObserver adds an observer. It may be given more than once.
func WithObserver(o Observer) Option {
	return func(c *Config) {
		if o != nil {
			c.Observers = append(c.Observers, o)
		}
	}
}

// defaultConfig returns the default view configuration.
func defaultConfig() Config {
	return Config{
		Clone:            true,
		IgnoredAttribute: DefaultIgnoredAttribute,
		InitialState:     State{},
	}
}

// resolveConfig applies opts over the defaults and fills what they left
// empty.
func resolveConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.IgnoredAttribute == "" {
		cfg.IgnoredAttribute = DefaultIgnoredAttribute
	}
	if cfg.IDs == nil {
		cfg.IDs = vdom.NewIDGenerator(DefaultIDPrefix)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
