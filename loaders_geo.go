package datacraft

func geoSupplier(config map[string]any, loader *Loader, startKey, endKey string, bound float64) (ValueSupplier, error) {
	start, err := configFloat(config, startKey, -bound)
	if err != nil {
		return nil, err
	}
	end, err := configFloat(config, endKey, bound)
	if err != nil {
		return nil, err
	}
	if start < -bound || start > bound {
		return nil, NewSpecErrorf("%s out of range [%v, %v]: %v", startKey, -bound, bound, start)
	}
	if end < -bound || end > bound {
		return nil, NewSpecErrorf("%s out of range [%v, %v]: %v", endKey, -bound, bound, end)
	}
	var supplier ValueSupplier
	supplier, err = RandomRangeSupplier(loader.Rand(), start, end)
	if err != nil {
		return nil, err
	}
	if _, ok := config["precision"]; ok {
		precision, err := configInt(config, "precision", 0)
		if err != nil {
			return nil, err
		}
		supplier = CastSupplier(supplier, RoundCaster(precision))
	}
	return supplier, nil
}

func latitudeSupplier(config map[string]any, loader *Loader) (ValueSupplier, error) {
	return geoSupplier(config, loader, "start_lat", "end_lat", 90)
}

func longitudeSupplier(config map[string]any, loader *Loader) (ValueSupplier, error) {
	return geoSupplier(config, loader, "start_long", "end_long", 180)
}

func geoLatTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		return latitudeSupplier(spec.Config(), loader)
	}, "geo.lat")
}

func geoLongTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		return longitudeSupplier(spec.Config(), loader)
	}, "geo.long")
}

// geoPairTypeLoader combines longitude and latitude, in this order unless "lat_first" is set.
func geoPairTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		config := spec.Config()
		lat, err := latitudeSupplier(config, loader)
		if err != nil {
			return nil, err
		}
		long, err := longitudeSupplier(config, loader)
		if err != nil {
			return nil, err
		}
		suppliers := []ValueSupplier{long, lat}
		if configBool(config, "lat_first", false) {
			suppliers = []ValueSupplier{lat, long}
		}
		joinWith := configString(config, "join_with", toString(loader.Default("geo_join_with")))
		return CombineSupplier(suppliers, joinWith, configBool(config, "as_list", false)), nil
	}, "geo.pair")
}
