package domain

// FeatureSchema is the ordered list of feature names the trained model was
// fitted against. It fixes both the dimensionality and the column order of
// every vector handed to the scaler and the clustering model. Immutable once
// built.
type FeatureSchema struct {
	names []string
	index map[string]int
}

// NewFeatureSchema builds a schema from an ordered name list.
func NewFeatureSchema(names []string) *FeatureSchema {
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}
	copied := make([]string, len(names))
	copy(copied, names)
	return &FeatureSchema{names: copied, index: idx}
}

// Len returns the vector dimensionality the schema defines.
func (s *FeatureSchema) Len() int {
	return len(s.names)
}

// Index returns the column position of a feature name.
func (s *FeatureSchema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Has reports whether the schema contains the named feature.
func (s *FeatureSchema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns a copy of the ordered feature names.
func (s *FeatureSchema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
