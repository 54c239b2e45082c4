package datacraft

import (
	"strconv"
)

// DefaultValues are the default configuration values set by RegisterBuiltins.
var DefaultValues = map[string]any{
	"date_format":          "yyyy-MM-dd",
	"date_duration_days":   30,
	"date_stddev_days":     5.0,
	"date_offset_days":     30,
	"outfile_prefix":       "generated",
	"outfile_extension":    "",
	"data_dir":             ".",
	"char_class_join_with": "",
	"combine_as_list":      false,
	"combine_join_with":    "",
	"geo_join_with":        ",",
}

// BuiltinTypeLoaders returns the type loaders of all the builtin field spec types.
func BuiltinTypeLoaders() []TypeLoader {
	return []TypeLoader{
		valuesTypeLoader(),
		sampleTypeLoader(),
		rangeTypeLoader(),
		randomRangeTypeLoader(),
		randomIntRangeTypeLoader(),
		uuidTypeLoader(),
		refTypeLoader(),
		refListTypeLoader(),
		weightedRefTypeLoader(),
		combineTypeLoader(),
		combineListTypeLoader(),
		replaceTypeLoader(),
		nestedTypeLoader(),
		dateTypeLoader(nil, "date"),
		dateTypeLoader(isoLayout, "date.iso"),
		dateTypeLoader(isoMillisLayout, "date.iso.ms", "date.iso.millis"),
		dateTypeLoader(isoMicrosLayout, "date.iso.us", "date.iso.micros"),
		dateEpochTypeLoader(false, "date.epoch"),
		dateEpochTypeLoader(true, "date.epoch.ms", "date.epoch.millis"),
		geoLatTypeLoader(),
		geoLongTypeLoader(),
		geoPairTypeLoader(),
		ipTypeLoader(),
		charClassTypeLoader(),
		charClassAbbreviationTypeLoader(),
	}
}

// BuiltinCasters returns the builtin casters by name.
func BuiltinCasters() map[string]Caster {
	casters := map[string]Caster{
		"int":    IntCaster(),
		"float":  FloatCaster(),
		"string": StringCaster(),
		"hex":    HexCaster(),
		"lower":  LowerCaster(),
		"upper":  UpperCaster(),
		"trim":   TrimCaster(),
	}
	for i := 0; i <= 10; i++ {
		casters["round"+strconv.Itoa(i)] = RoundCaster(i)
		casters["zfill"+strconv.Itoa(i)] = ZFillCaster(i)
	}
	return casters
}

// RegisterBuiltins registers the builtin types, casters and default values in the registry.
func RegisterBuiltins(r *Registry) error {
	for name, value := range DefaultValues {
		r.SetDefault(name, value)
	}
	for name, caster := range BuiltinCasters() {
		if err := r.RegisterCaster(name, caster); err != nil {
			return err
		}
	}
	for _, typeLoader := range BuiltinTypeLoaders() {
		if err := r.RegisterType(typeLoader); err != nil {
			return err
		}
	}
	return nil
}
