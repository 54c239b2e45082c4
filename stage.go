package datacraft

// Stage wraps a resolved supplier, transforming the values it produces. Stages are applied in
// registry order after the type loader builds the supplier.
type Stage interface {
	Apply(spec FieldSpec, supplier ValueSupplier, loader *Loader) (ValueSupplier, error)
}

// StageFunc is a functional implementation of Stage.
type StageFunc func(spec FieldSpec, supplier ValueSupplier, loader *Loader) (ValueSupplier, error)

func (f StageFunc) Apply(spec FieldSpec, supplier ValueSupplier, loader *Loader) (ValueSupplier, error) {
	return f(spec, supplier, loader)
}

// CastStage wraps the supplier with the casters listed in the "cast" config.
func CastStage() Stage {
	return StageFunc(func(spec FieldSpec, supplier ValueSupplier, loader *Loader) (ValueSupplier, error) {
		cast, ok := spec.Config()["cast"]
		if !ok || cast == nil {
			return supplier, nil
		}
		caster, err := ParseCasters(loader.Registry(), toString(cast))
		if err != nil {
			return nil, err
		}
		return CastSupplier(supplier, caster), nil
	})
}

// DecorateStage wraps the supplier with the "prefix" and "suffix" config.
func DecorateStage() Stage {
	return StageFunc(func(spec FieldSpec, supplier ValueSupplier, loader *Loader) (ValueSupplier, error) {
		config := spec.Config()
		_, hasPrefix := config["prefix"]
		_, hasSuffix := config["suffix"]
		if !hasPrefix && !hasSuffix {
			return supplier, nil
		}
		return DecoratedSupplier(supplier, configString(config, "prefix", ""), configString(config, "suffix", "")), nil
	})
}

// CastSupplierData casts every value produced by the wrapped supplier.
type CastSupplierData struct {
	Supplier ValueSupplier
	Caster   Caster
}

func CastSupplier(supplier ValueSupplier, caster Caster) *CastSupplierData {
	return &CastSupplierData{Supplier: supplier, Caster: caster}
}

var _ ValueSupplier = (*CastSupplierData)(nil)

func (s *CastSupplierData) Next(iteration int64) (any, error) {
	v, err := s.Supplier.Next(iteration)
	if err != nil {
		return nil, err
	}
	return CastList(s.Caster, v)
}

// DecoratedSupplierData renders the wrapped value as text between a prefix and a suffix.
type DecoratedSupplierData struct {
	Supplier ValueSupplier
	Prefix   string
	Suffix   string
}

func DecoratedSupplier(supplier ValueSupplier, prefix, suffix string) *DecoratedSupplierData {
	return &DecoratedSupplierData{Supplier: supplier, Prefix: prefix, Suffix: suffix}
}

var _ ValueSupplier = (*DecoratedSupplierData)(nil)

func (s *DecoratedSupplierData) Next(iteration int64) (any, error) {
	v, err := s.Supplier.Next(iteration)
	if err != nil {
		return nil, err
	}
	return s.Prefix + toString(v) + s.Suffix, nil
}
