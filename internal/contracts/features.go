package contracts

// Feature is one named column of the model input.
type Feature struct {
	Name  string
	Value float64
}

// FeatureVector is the ordered model input row: the utilization-ratio column
// followed by the whitelisted statistical descriptors, in whitelist order.
// Order matters; the model was trained on a fixed column layout.
type FeatureVector []Feature

// Values returns the vector's values in column order.
func (v FeatureVector) Values() []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = f.Value
	}
	return out
}

// Names returns the vector's column names in order.
func (v FeatureVector) Names() []string {
	out := make([]string, len(v))
	for i, f := range v {
		out[i] = f.Name
	}
	return out
}

// Get looks a column up by name.
func (v FeatureVector) Get(name string) (float64, bool) {
	for _, f := range v {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}
