package datacraft

func refTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		refSpec, ok := spec.(*RefFieldSpec)
		if !ok {
			return nil, NewSpecErrorf("invalid spec for ref type: %v", spec)
		}
		return loader.Get(refSpec.Ref)
	}, "ref")
}

func refListTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		refSpec, ok := spec.(*RefListFieldSpec)
		if !ok {
			return nil, NewSpecErrorf("invalid spec for ref_list type: %v", spec)
		}
		suppliers, err := getSuppliers(loader, refSpec.Refs)
		if err != nil {
			return nil, err
		}
		return ListOfSuppliers(suppliers), nil
	}, "ref_list")
}

func weightedRefTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		data, ok := toMap(spec.Data())
		if !ok || len(data) == 0 {
			return nil, NewSpecErrorf("data must be a map of ref names to weights for weighted_ref spec: %v", spec)
		}
		keySupplier, err := WeightedMapSupplier(loader.Rand(), data)
		if err != nil {
			return nil, err
		}
		refs := map[string]ValueSupplier{}
		for key := range data {
			refs[key], err = loader.Get(key)
			if err != nil {
				return nil, err
			}
		}
		return WeightedRefSupplier(keySupplier, refs), nil
	}, "weighted_ref")
}

func combineTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		combineSpec, ok := spec.(*CombineFieldSpec)
		if !ok {
			return nil, NewSpecErrorf("invalid spec for combine type: %v", spec)
		}
		return loadCombine(spec, append(append([]string{}, combineSpec.Refs...), combineSpec.Fields...), loader)
	}, "combine")
}

func combineListTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		combineSpec, ok := spec.(*CombineListFieldSpec)
		if !ok {
			return nil, NewSpecErrorf("invalid spec for combine-list type: %v", spec)
		}
		var suppliers []ValueSupplier
		for _, refs := range combineSpec.Refs {
			supplier, err := loadCombine(spec, refs, loader)
			if err != nil {
				return nil, err
			}
			suppliers = append(suppliers, supplier)
		}
		return ListOfSuppliers(suppliers), nil
	}, "combine-list")
}

func loadCombine(spec FieldSpec, names []string, loader *Loader) (ValueSupplier, error) {
	suppliers, err := getSuppliers(loader, names)
	if err != nil {
		return nil, err
	}
	config := spec.Config()
	joinWith := configString(config, "join_with", toString(loader.Default("combine_join_with")))
	defaultAsList, _ := toBool(loader.Default("combine_as_list"))
	asList := configBool(config, "as_list", defaultAsList)
	return CombineSupplier(suppliers, joinWith, asList), nil
}

func replaceTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		replaceSpec, ok := spec.(*ReplaceFieldSpec)
		if !ok {
			return nil, NewSpecErrorf("invalid spec for replace type: %v", spec)
		}
		wrapped, err := loader.Get(replaceSpec.Ref)
		if err != nil {
			return nil, err
		}
		data, ok := toMap(spec.Data())
		if !ok {
			return nil, NewSpecErrorf("data must be a map for replace spec: %v", spec)
		}
		var replacements []Replacement
		for _, key := range sortedKeys(data) {
			supplier, err := valuesSupplier(loader.Rand(), data[key])
			if err != nil {
				return nil, err
			}
			replacements = append(replacements, Replacement{Old: key, New: supplier})
		}
		return ReplaceSupplier(wrapped, replacements), nil
	}, "replace")
}

func nestedTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		nestedSpec, ok := spec.(*NestedFieldSpec)
		if !ok {
			return nil, NewSpecErrorf("invalid spec for nested type: %v", spec)
		}
		canonical, err := Preprocess(nestedSpec.Fields)
		if err != nil {
			return nil, err
		}
		if nestedSpec.FieldGroups != nil {
			canonical["field_groups"] = nestedSpec.FieldGroups
		}
		ds, err := newDataSpec(canonical, loader.options)
		if err != nil {
			return nil, err
		}
		ds.loader.parent = loader
		return NestedSupplier(ds), nil
	}, "nested")
}

func getSuppliers(loader *Loader, names []string) ([]ValueSupplier, error) {
	suppliers := make([]ValueSupplier, 0, len(names))
	for _, name := range names {
		supplier, err := loader.Get(name)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, nil
}
