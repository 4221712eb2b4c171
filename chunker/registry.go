package chunker

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Params carries the per-request knobs a strategy factory may honour.
// Nil pointers fall back to the strategy defaults, so a caller can
// distinguish "overlap not given" from "overlap of zero".
type Params struct {
	ChunkSize *int
	Overlap   *int
}

// Factory builds a configured Splitter for a single invocation.
type Factory func(p Params) Splitter

// Registry maps strategy names to splitter factories. It is the fixed
// dispatch table the transport layer uses to resolve the strategy
// field of a request; nothing is looked up dynamically.
type Registry struct {
	mu        sync.RWMutex
	factories map[Strategy]Factory
	logger    *slog.Logger
}

// NewRegistry creates an empty strategy registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		factories: make(map[Strategy]Factory),
		logger:    logger,
	}
}

// Register adds a strategy to the registry. Registering the same name
// twice is an error.
func (r *Registry) Register(name Strategy, factory Factory) error {
	if name == "" {
		return errors.New("cannot register strategy with empty name")
	}
	if factory == nil {
		return errors.New("cannot register nil strategy factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("strategy %q already registered", name)
	}
	r.factories[name] = factory

	r.logger.Debug("registered chunking strategy", "strategy", name)
	return nil
}

// Splitter resolves a strategy name and builds a splitter configured
// with the given params.
func (r *Registry) Splitter(name Strategy, p Params) (Splitter, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return factory(p), nil
}

// Names returns the registered strategy names in sorted order.
func (r *Registry) Names() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]Strategy, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RegisterStrategies builds a registry populated with every built-in
// strategy.
func RegisterStrategies(logger *slog.Logger) (*Registry, error) {
	r := NewRegistry(logger)

	builtins := map[Strategy]Factory{
		StrategyFixed: func(p Params) Splitter {
			return NewFixedSize(p.options()...)
		},
		StrategyParagraph: func(Params) Splitter {
			return NewParagraph()
		},
		StrategySentence: func(Params) Splitter {
			return NewSentence()
		},
		StrategySlidingWindow: func(p Params) Splitter {
			return NewSlidingWindow(p.options()...)
		},
		StrategyHybrid: func(p Params) Splitter {
			return NewHybrid(p.options()...)
		},
		StrategySentenceWindow: func(p Params) Splitter {
			return NewSentenceWindow(p.options()...)
		},
	}

	for name, factory := range builtins {
		if err := r.Register(name, factory); err != nil {
			return nil, err
		}
	}

	r.logger.Info("chunking strategies registered", "count", len(builtins))
	return r, nil
}

// options converts the params into splitter options, leaving unset
// fields to the defaults.
func (p Params) options() []Option {
	var opts []Option
	if p.ChunkSize != nil {
		opts = append(opts, WithChunkSize(*p.ChunkSize))
	}
	if p.Overlap != nil {
		opts = append(opts, WithOverlap(*p.Overlap))
	}
	return opts
}
