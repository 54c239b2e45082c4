package datacraft

import (
	"errors"
	"iter"
)

// Generator generates a fixed amount of records from a DataSpec. It is not safe for concurrent use.
type Generator struct {
	spec       *DataSpec
	iterations int64
	count      int64
	finished   bool
	options    recordOptions
}

// HasNext returns whether there are more records to generate.
func (g *Generator) HasNext() bool {
	return g.count < g.iterations
}

// Iteration returns the 1-based iteration of the last generated record.
func (g *Generator) Iteration() int64 {
	return g.count
}

// Next generates the next record, or returns ErrNoMoreRecords if all records were generated.
func (g *Generator) Next() (map[string]any, error) {
	if !g.HasNext() {
		if err := g.finish(); err != nil {
			return nil, err
		}
		return nil, ErrNoMoreRecords
	}
	g.count++

	label, fieldNames := g.spec.keyProvider.Next()
	record := make(map[string]any, len(fieldNames))
	for _, name := range fieldNames {
		supplier, err := g.spec.loader.Get(name)
		if err != nil {
			return nil, err
		}
		value, err := supplier.Next(g.count)
		if err != nil {
			return nil, NewSpecErrorf("error generating field '%s': %w", name, err)
		}
		record[name] = value
		if g.options.output != nil {
			if err := g.options.output.Handle(name, value); err != nil {
				return nil, err
			}
		}
	}
	if g.options.output != nil {
		if err := g.options.output.FinishedRecord(g.count, label, g.options.excludeInternal); err != nil {
			return nil, err
		}
	}
	if !g.HasNext() {
		if err := g.finish(); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// All iterates over the remaining records. Iteration stops after the first error.
func (g *Generator) All() iter.Seq2[map[string]any, error] {
	return func(yield func(map[string]any, error) bool) {
		for {
			record, err := g.Next()
			if errors.Is(err, ErrNoMoreRecords) {
				return
			}
			if !yield(record, err) || err != nil {
				return
			}
		}
	}
}

func (g *Generator) finish() error {
	if g.finished {
		return nil
	}
	g.finished = true
	g.spec.options.logger.Debug("generation finished", "records", g.count)
	if g.options.output != nil {
		return g.options.output.FinishedIterations()
	}
	return nil
}

// Generate parses the raw spec and returns a generator of the amount of records.
func Generate(raw any, iterations int64, options ...GenerateOption) (*Generator, error) {
	parseOpts, recordOpts := splitOptions(options)
	ds, err := Parse(raw, parseOpts...)
	if err != nil {
		return nil, err
	}
	return ds.Generator(iterations, recordOpts...), nil
}

// Entries parses the raw spec and generates the amount of records.
func Entries(raw any, iterations int64, options ...GenerateOption) ([]map[string]any, error) {
	parseOpts, recordOpts := splitOptions(options)
	ds, err := Parse(raw, parseOpts...)
	if err != nil {
		return nil, err
	}
	return ds.Entries(iterations, recordOpts...)
}
