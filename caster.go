package datacraft

import (
	"math"
	"strconv"
	"strings"
)

// Caster transforms a generated value into another representation.
type Caster interface {
	Cast(value any) (any, error)
}

// CasterFunc is a functional implementation of Caster.
type CasterFunc func(value any) (any, error)

func (f CasterFunc) Cast(value any) (any, error) {
	return f(value)
}

// CastList casts every element of a list, or the value itself if it is not a list.
func CastList(caster Caster, value any) (any, error) {
	list, ok := value.([]any)
	if !ok {
		return caster.Cast(value)
	}
	ret := make([]any, len(list))
	for i, item := range list {
		v, err := caster.Cast(item)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

// MultiCaster applies a list of casters in order.
type MultiCaster []Caster

func (c MultiCaster) Cast(value any) (any, error) {
	var err error
	for _, caster := range c {
		value, err = CastList(caster, value)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// IntCaster truncates any numeric value, or numeric string, to int.
func IntCaster() Caster {
	return CasterFunc(func(value any) (any, error) {
		i, ok := toInt(value)
		if !ok {
			return nil, NewSpecErrorf("unable to cast '%v' as int", value)
		}
		return i, nil
	})
}

func FloatCaster() Caster {
	return CasterFunc(func(value any) (any, error) {
		f, ok := toFloat(value)
		if !ok {
			return nil, NewSpecErrorf("unable to cast '%v' as float", value)
		}
		return f, nil
	})
}

func StringCaster() Caster {
	return CasterFunc(func(value any) (any, error) {
		return toString(value), nil
	})
}

// HexCaster truncates the value to int and renders it in base 16.
func HexCaster() Caster {
	return CasterFunc(func(value any) (any, error) {
		i, ok := toInt(value)
		if !ok {
			return nil, NewSpecErrorf("unable to cast '%v' as hex", value)
		}
		return strconv.FormatInt(int64(i), 16), nil
	})
}

func LowerCaster() Caster {
	return CasterFunc(func(value any) (any, error) {
		return strings.ToLower(toString(value)), nil
	})
}

func UpperCaster() Caster {
	return CasterFunc(func(value any) (any, error) {
		return strings.ToUpper(toString(value)), nil
	})
}

func TrimCaster() Caster {
	return CasterFunc(func(value any) (any, error) {
		return strings.TrimSpace(toString(value)), nil
	})
}

// RoundCaster rounds the value to a number of decimal digits.
func RoundCaster(digits int) Caster {
	pow := math.Pow10(digits)
	return CasterFunc(func(value any) (any, error) {
		f, ok := toFloat(value)
		if !ok {
			return nil, NewSpecErrorf("unable to round '%v'", value)
		}
		return math.Round(f*pow) / pow, nil
	})
}

// ZFillCaster left-pads the text value with zeros until it has the requested width.
func ZFillCaster(width int) Caster {
	return CasterFunc(func(value any) (any, error) {
		s := toString(value)
		sign := ""
		if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
			sign, s = s[:1], s[1:]
		}
		if pad := width - len(sign) - len(s); pad > 0 {
			s = strings.Repeat("0", pad) + s
		}
		return sign + s, nil
	})
}

// ParseCasters parses a ";"-delimited list of caster names into a single caster.
func ParseCasters(registry *Registry, names string) (Caster, error) {
	var ret MultiCaster
	for _, name := range strings.Split(names, ";") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		caster, ok := registry.Caster(name)
		if !ok {
			return nil, NewSpecErrorf("%w: '%s'", ErrUnknownCaster, name)
		}
		ret = append(ret, caster)
	}
	if len(ret) == 1 {
		return ret[0], nil
	}
	return ret, nil
}
