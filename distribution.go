package datacraft

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Distribution generates random numbers following some statistical distribution.
type Distribution interface {
	NextValue() float64
}

// UniformDistribution generates values uniformly in [Start, End).
type UniformDistribution struct {
	Start float64
	End   float64
	rnd   *rand.Rand
}

func NewUniformDistribution(rnd *rand.Rand, start, end float64) *UniformDistribution {
	return &UniformDistribution{Start: start, End: end, rnd: rnd}
}

func (d *UniformDistribution) NextValue() float64 {
	return d.Start + d.rnd.Float64()*(d.End-d.Start)
}

// NormalDistribution generates gaussian values, optionally clamped to [Min, Max].
type NormalDistribution struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	rnd    *rand.Rand
}

// NewNormalDistribution creates a gaussian distribution without bounds.
func NewNormalDistribution(rnd *rand.Rand, mean, stddev float64) *NormalDistribution {
	return &NormalDistribution{
		Mean:   mean,
		StdDev: stddev,
		Min:    math.Inf(-1),
		Max:    math.Inf(1),
		rnd:    rnd,
	}
}

func (d *NormalDistribution) NextValue() float64 {
	v := d.Mean + d.StdDev*d.rnd.NormFloat64()
	return max(d.Min, min(d.Max, v))
}

// ParseDistribution parses a distribution in the "name(param=value,...)" format. Supported names are
// "uniform" (start, end) and "normal" or "gauss" (mean, stddev, min, max).
func ParseDistribution(rnd *rand.Rand, s string) (Distribution, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return nil, NewSpecErrorf("invalid distribution '%s'", s)
	}
	name := strings.ToLower(strings.TrimSpace(s[:open]))
	params := map[string]float64{}
	for _, p := range strings.Split(s[open+1:len(s)-1], ",") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, NewSpecErrorf("invalid distribution parameter '%s' in '%s'", p, s)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, NewSpecErrorf("invalid distribution parameter value '%s' in '%s': %w", v, s, err)
		}
		params[strings.TrimSpace(k)] = f
	}

	switch name {
	case "uniform":
		start, sok := params["start"]
		end, eok := params["end"]
		if !sok || !eok {
			return nil, NewSpecErrorf("uniform distribution requires start and end: '%s'", s)
		}
		return NewUniformDistribution(rnd, start, end), nil
	case "normal", "gauss", "gaussian":
		mean, mok := params["mean"]
		stddev, sok := params["stddev"]
		if !mok || !sok {
			return nil, NewSpecErrorf("normal distribution requires mean and stddev: '%s'", s)
		}
		d := NewNormalDistribution(rnd, mean, stddev)
		if v, ok := params["min"]; ok {
			d.Min = v
		}
		if v, ok := params["max"]; ok {
			d.Max = v
		}
		return d, nil
	default:
		return nil, NewSpecErrorf("unknown distribution '%s'", name)
	}
}

// DistributionSupplierData returns the next value of a distribution.
type DistributionSupplierData struct {
	Distribution Distribution
}

func DistributionSupplier(distribution Distribution) *DistributionSupplierData {
	return &DistributionSupplierData{Distribution: distribution}
}

var _ ValueSupplier = (*DistributionSupplierData)(nil)

func (s *DistributionSupplierData) Next(iteration int64) (any, error) {
	return s.Distribution.NextValue(), nil
}
