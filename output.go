package datacraft

import (
	"maps"
)

// OutputHandler is notified of each generated field, each finished record, and the end of the generation.
type OutputHandler interface {
	Handle(fieldName string, value any) error
	FinishedRecord(iteration int64, groupLabel string, excludeInternal bool) error
	FinishedIterations() error
}

// RecordsFunc receives a batch of assembled records.
type RecordsFunc func(records []map[string]any) error

const (
	InternalField           = "_internal"
	InternalIterationField  = "_iteration"
	InternalFieldGroupField = "_field_group"
)

// RecordOutputData assembles the handled fields into records and sends them in batches.
// Unless excluded, each record receives an "_internal" field with the iteration and field group label.
type RecordOutputData struct {
	fn        RecordsFunc
	batchSize int
	current   map[string]any
	buffer    []map[string]any
}

// RecordOutput assembles the handled fields into records and sends them in batches of batchSize records.
// The last batch may be smaller.
func RecordOutput(batchSize int, fn RecordsFunc) *RecordOutputData {
	return &RecordOutputData{
		fn:        fn,
		batchSize: max(batchSize, 1),
		current:   map[string]any{},
	}
}

var _ OutputHandler = (*RecordOutputData)(nil)

func (o *RecordOutputData) Handle(fieldName string, value any) error {
	o.current[fieldName] = value
	return nil
}

func (o *RecordOutputData) FinishedRecord(iteration int64, groupLabel string, excludeInternal bool) error {
	record := maps.Clone(o.current)
	clear(o.current)
	if !excludeInternal {
		record[InternalField] = map[string]any{
			InternalIterationField:  iteration,
			InternalFieldGroupField: groupLabel,
		}
	}
	o.buffer = append(o.buffer, record)
	if len(o.buffer) >= o.batchSize {
		return o.flush()
	}
	return nil
}

func (o *RecordOutputData) FinishedIterations() error {
	if len(o.buffer) > 0 {
		return o.flush()
	}
	return nil
}

func (o *RecordOutputData) flush() error {
	records := o.buffer
	o.buffer = nil
	return o.fn(records)
}

// FieldOutputFunc is an OutputHandler which only receives the generated fields.
type FieldOutputFunc func(fieldName string, value any) error

var _ OutputHandler = FieldOutputFunc(nil)

func (f FieldOutputFunc) Handle(fieldName string, value any) error {
	return f(fieldName, value)
}

func (f FieldOutputFunc) FinishedRecord(iteration int64, groupLabel string, excludeInternal bool) error {
	return nil
}

func (f FieldOutputFunc) FinishedIterations() error {
	return nil
}
