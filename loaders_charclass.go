package datacraft

import (
	"strings"
)

func charClassTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		return loadCharClass(spec.Data(), spec.Config(), loader)
	}, "char_class")
}

// charClassAbbreviationTypeLoader registers "cc-<class>" for every named character class.
func charClassAbbreviationTypeLoader() TypeLoader {
	var typeNames []string
	for _, name := range sortedKeys(CharClasses) {
		typeNames = append(typeNames, "cc-"+name)
	}
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		return loadCharClass(strings.TrimPrefix(spec.Type(), "cc-"), spec.Config(), loader)
	}, typeNames...)
}

func loadCharClass(data any, config map[string]any, loader *Loader) (ValueSupplier, error) {
	if data == nil {
		return nil, NewSpecError("data is required for char_class type")
	}

	var pool string
	switch d := data.(type) {
	case string:
		pool = charClassChars(d)
	case []any:
		var b strings.Builder
		for _, item := range d {
			b.WriteString(charClassChars(toString(item)))
		}
		pool = b.String()
	default:
		return nil, NewSpecErrorf("char_class data must be a string or a list of strings: %v", data)
	}

	if exclude := configString(config, "exclude", ""); exclude != "" {
		pool = strings.Map(func(r rune) rune {
			if strings.ContainsRune(exclude, r) {
				return -1
			}
			return r
		}, pool)
	}
	if pool == "" {
		return nil, NewSpecErrorf("char_class has no characters to sample from: %v", data)
	}
	runes := []rune(pool)

	var count ValueSupplier
	var err error
	switch {
	case config["count"] != nil:
		count, err = valuesSupplier(loader.Rand(), config["count"])
	case config["count_dist"] != nil:
		var distribution Distribution
		distribution, err = ParseDistribution(loader.Rand(), toString(config["count_dist"]))
		count = DistributionSupplier(distribution)
	default:
		count, err = StatsCountSupplier(loader.Rand(), config, len(runes))
	}
	if err != nil {
		return nil, err
	}

	return &CharSamplerSupplierData{
		Pool:      runes,
		Count:     count,
		JoinWith:  configString(config, "join_with", toString(loader.Default("char_class_join_with"))),
		Escape:    configString(config, "escape", ""),
		EscapeStr: configString(config, "escape_str", "\\"),
		rnd:       loader.Rand(),
	}, nil
}

// charClassChars returns the characters of a named class, or the string itself as literal characters.
func charClassChars(s string) string {
	if chars, ok := CharClasses[s]; ok {
		return chars
	}
	return s
}
