package datacraft

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

// GenerateOption is accepted by the functions that parse a spec and generate records in one call.
type GenerateOption interface {
	isGenerateOption()
}

// ParseOption configures spec parsing and value supplier resolution.
type ParseOption interface {
	GenerateOption
	apply(*parseOptions)
}

// RecordOption configures record generation.
type RecordOption interface {
	GenerateOption
	apply(*recordOptions)
}

type parseOptions struct {
	registry *Registry
	rnd      *rand.Rand
	logger   *slog.Logger
	now      func() time.Time
	location *time.Location
}

func newParseOptions(options ...ParseOption) parseOptions {
	var optns parseOptions
	for _, opt := range options {
		opt.apply(&optns)
	}
	if optns.registry == nil {
		optns.registry = NewDefaultRegistry()
	}
	if optns.rnd == nil {
		optns.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if optns.logger == nil {
		optns.logger = slog.New(slog.DiscardHandler)
	}
	if optns.now == nil {
		optns.now = time.Now
	}
	if optns.location == nil {
		optns.location = time.Local
	}
	return optns
}

type recordOptions struct {
	output          OutputHandler
	excludeInternal bool
}

// WithRegistry sets the registry of types, casters and defaults. The default is NewDefaultRegistry().
func WithRegistry(registry *Registry) ParseOption {
	return fnParseOption(func(o *parseOptions) {
		o.registry = registry
	})
}

// WithRand sets the random source used by all value suppliers.
func WithRand(rnd *rand.Rand) ParseOption {
	return fnParseOption(func(o *parseOptions) {
		o.rnd = rnd
	})
}

// WithSeed sets a deterministic random source.
func WithSeed(seed1, seed2 uint64) ParseOption {
	return fnParseOption(func(o *parseOptions) {
		o.rnd = rand.New(rand.NewPCG(seed1, seed2))
	})
}

// WithLogger sets a logger for debug information. Logging is disabled by default.
func WithLogger(logger *slog.Logger) ParseOption {
	return fnParseOption(func(o *parseOptions) {
		o.logger = logger
	})
}

// WithNow sets the function returning the current time, used as the base for dates.
func WithNow(now func() time.Time) ParseOption {
	return fnParseOption(func(o *parseOptions) {
		o.now = now
	})
}

// WithLocation sets the location used to parse and format dates. The default is time.Local.
func WithLocation(location *time.Location) ParseOption {
	return fnParseOption(func(o *parseOptions) {
		o.location = location
	})
}

// WithOutput sets an output handler to be notified of each generated field and record.
func WithOutput(output OutputHandler) RecordOption {
	return fnRecordOption(func(o *recordOptions) {
		o.output = output
	})
}

// WithExcludeInternal tells the output handler to not add internal metadata to the records.
func WithExcludeInternal(exclude bool) RecordOption {
	return fnRecordOption(func(o *recordOptions) {
		o.excludeInternal = exclude
	})
}

// splitOptions separates generate options into parse and record options.
func splitOptions(options []GenerateOption) (parse []ParseOption, record []RecordOption) {
	for _, opt := range options {
		switch o := opt.(type) {
		case ParseOption:
			parse = append(parse, o)
		case RecordOption:
			record = append(record, o)
		}
	}
	return
}

type fnParseOption func(o *parseOptions)

func (f fnParseOption) apply(o *parseOptions) {
	f(o)
}

func (f fnParseOption) isGenerateOption() {}

type fnRecordOption func(o *recordOptions)

func (f fnRecordOption) apply(o *recordOptions) {
	f(o)
}

func (f fnRecordOption) isGenerateOption() {}
