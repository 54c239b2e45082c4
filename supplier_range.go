package datacraft

import (
	"math"
	"math/rand/v2"
)

type rangeNumber interface {
	~int | ~float64
}

// rangeEpsilon absorbs rounding when counting the steps of a float range.
const rangeEpsilon = 1e-9

// RangeSupplierData returns start, start+step, ... up to and including end, then wraps back to start.
// Use RangeSupplier to create it.
type RangeSupplierData[T rangeNumber] struct {
	Start T
	End   T
	Step  T
	steps uint64
	step  uint64
}

// RangeSupplier returns start, start+step, ... up to and including end, then wraps back to start.
func RangeSupplier[T rangeNumber](start, end, step T) (*RangeSupplierData[T], error) {
	if step <= 0 {
		return nil, NewSpecErrorf("range step must be positive, got %v", step)
	}
	if end < start {
		return nil, NewSpecErrorf("range end %v is lower than start %v", end, start)
	}
	return &RangeSupplierData[T]{
		Start: start,
		End:   end,
		Step:  step,
		steps: rangeSteps(start, end, step),
	}, nil
}

var _ ValueSupplier = (*RangeSupplierData[int])(nil)

func (s *RangeSupplierData[T]) Next(iteration int64) (any, error) {
	// integer overflow wraps, and the result is always between Start and End.
	ret := s.Start + T(s.step)*s.Step
	if ret > s.End {
		ret = s.End
	}
	if s.step >= s.steps {
		s.step = 0
	} else {
		s.step++
	}
	return ret, nil
}

// rangeSteps returns the number of steps after start that are not greater than end.
func rangeSteps[T rangeNumber](start, end, step T) uint64 {
	if T(1)/2 != 0 {
		return uint64(math.Floor((float64(end)-float64(start))/float64(step) + rangeEpsilon))
	}
	return (uint64(end) - uint64(start)) / uint64(step)
}

// RandomRangeSupplierData returns a uniform random float64 in [Start, End).
type RandomRangeSupplierData struct {
	Start float64
	End   float64
	rnd   *rand.Rand
}

func RandomRangeSupplier(rnd *rand.Rand, start, end float64) (*RandomRangeSupplierData, error) {
	if end < start {
		return nil, NewSpecErrorf("random range end %v is lower than start %v", end, start)
	}
	return &RandomRangeSupplierData{Start: start, End: end, rnd: rnd}, nil
}

var _ ValueSupplier = (*RandomRangeSupplierData)(nil)

func (s *RandomRangeSupplierData) Next(iteration int64) (any, error) {
	return s.Start + s.rnd.Float64()*(s.End-s.Start), nil
}
