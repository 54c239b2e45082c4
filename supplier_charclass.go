package datacraft

import (
	"math"
	"math/rand/v2"
	"strings"
)

const (
	charsLower       = "abcdefghijklmnopqrstuvwxyz"
	charsUpper       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	charsDigits      = "0123456789"
	charsPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	charsASCII       = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
)

// CharClasses are the named character classes usable in char_class specs.
var CharClasses = map[string]string{
	"ascii":       charsASCII,
	"lower":       charsLower,
	"upper":       charsUpper,
	"letters":     charsLower + charsUpper,
	"word":        charsLower + charsUpper + charsDigits + "_",
	"printable":   charsASCII,
	"visible":     charsASCII[1:],
	"punctuation": charsPunctuation,
	"special":     charsPunctuation,
	"digits":      charsDigits,
	"hex":         charsDigits + "abcdefABCDEF",
	"hex-lower":   charsDigits + "abcdef",
	"hex-upper":   charsDigits + "ABCDEF",
}

// CharSamplerSupplierData samples characters uniformly with replacement from a pool.
type CharSamplerSupplierData struct {
	Pool      []rune
	Count     ValueSupplier
	JoinWith  string
	Escape    string
	EscapeStr string
	rnd       *rand.Rand
}

var _ ValueSupplier = (*CharSamplerSupplierData)(nil)

func (s *CharSamplerSupplierData) Next(iteration int64) (any, error) {
	cv, err := s.Count.Next(iteration)
	if err != nil {
		return nil, err
	}
	count, ok := toInt(cv)
	if !ok {
		return nil, NewSpecErrorf("invalid character count '%v'", cv)
	}
	var b strings.Builder
	for i := range max(count, 0) {
		if i > 0 {
			b.WriteString(s.JoinWith)
		}
		c := s.Pool[s.rnd.IntN(len(s.Pool))]
		if s.Escape != "" && strings.ContainsRune(s.Escape, c) {
			b.WriteString(s.EscapeStr)
		}
		b.WriteRune(c)
	}
	return b.String(), nil
}

// StatsCountSupplierData draws a gaussian count, clamped to [Min, Max].
type StatsCountSupplierData struct {
	Mean   float64
	StdDev float64
	Min    int
	Max    int
	rnd    *rand.Rand
}

// StatsCountSupplier creates a gaussian count supplier. The standard deviation defaults to the distance
// from the mean to the closest of min and max.
func StatsCountSupplier(rnd *rand.Rand, config map[string]any, poolSize int) (*StatsCountSupplierData, error) {
	mean, err := configFloat(config, "mean", 1)
	if err != nil {
		return nil, err
	}
	minCount, err := configInt(config, "min", 1)
	if err != nil {
		return nil, err
	}
	maxCount, err := configInt(config, "max", poolSize)
	if err != nil {
		return nil, err
	}
	if maxCount < minCount {
		return nil, NewSpecErrorf("max count %d is lower than min count %d", maxCount, minCount)
	}
	stddev, err := configFloat(config, "stddev", min(math.Abs(mean-float64(minCount)), math.Abs(mean-float64(maxCount))))
	if err != nil {
		return nil, err
	}
	return &StatsCountSupplierData{
		Mean:   mean,
		StdDev: stddev,
		Min:    minCount,
		Max:    maxCount,
		rnd:    rnd,
	}, nil
}

var _ ValueSupplier = (*StatsCountSupplierData)(nil)

func (s *StatsCountSupplierData) Next(iteration int64) (any, error) {
	count := int(s.Mean)
	if s.StdDev != 0 {
		count = int(math.Floor(s.rnd.NormFloat64()*s.StdDev + s.Mean))
	}
	return max(s.Min, min(s.Max, count)), nil
}
