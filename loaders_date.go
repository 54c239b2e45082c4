package datacraft

// dateTypeLoader formats dates with the "format" config, or with the fixed output format if set.
func dateTypeLoader(outputFormat DateFormat, typeNames ...string) TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		config := spec.Config()
		distribution, err := dateDistribution(config, loader)
		if err != nil {
			return nil, err
		}

		format := outputFormat
		if format == nil {
			format, err = datePattern(config, loader)
			if err != nil {
				return nil, err
			}
		}

		supplier := &DateSupplierData{
			Distribution: distribution,
			Format:       format,
			Location:     loader.Location(),
		}
		if hours, ok := config["hours"]; ok && hours != nil {
			supplier.Hours, err = loader.LoadValue(hours)
			if err != nil {
				return nil, NewSpecErrorf("invalid hours config: %w", err)
			}
		}
		return supplier, nil
	}, typeNames...)
}

func dateEpochTypeLoader(millis bool, typeNames ...string) TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		distribution, err := dateDistribution(spec.Config(), loader)
		if err != nil {
			return nil, err
		}
		return &EpochDateSupplierData{Distribution: distribution, Millis: millis}, nil
	}, typeNames...)
}
