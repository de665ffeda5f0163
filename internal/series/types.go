package series

// Sample represents a single parsed observation in the series
type Sample struct {
	// Index is the zero-based position in chronological order; it is the
	// independent variable for trend fitting
	Index int `json:"index"`
	// Label is the opaque time/date field, carried through for reporting
	// but never interpreted
	Label string `json:"label"`
	// Value is the numeric observation
	Value float64 `json:"value"`
}

// SampleSet is an ordered, immutable sequence of samples. Insertion order
// is assumed chronological; it is not independently verified. Once loaded,
// a SampleSet is never mutated, so independent reports may read it
// concurrently without locking.
type SampleSet struct {
	samples []Sample
	values  []float64
}

// NewSampleSet builds a SampleSet from parsed samples.
// The slice is owned by the SampleSet afterwards.
func NewSampleSet(samples []Sample) *SampleSet {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}
	return &SampleSet{samples: samples, values: values}
}

// Len returns the number of samples
func (s *SampleSet) Len() int {
	return len(s.samples)
}

// At returns the sample at position i
func (s *SampleSet) At(i int) Sample {
	return s.samples[i]
}

// Samples returns the ordered samples. Callers must treat the slice as
// read-only.
func (s *SampleSet) Samples() []Sample {
	return s.samples
}

// Values returns the ordered values. Callers must treat the slice as
// read-only.
func (s *SampleSet) Values() []float64 {
	return s.values
}

// Labels returns the time labels in sample order
func (s *SampleSet) Labels() []string {
	labels := make([]string, len(s.samples))
	for i, smp := range s.samples {
		labels[i] = smp.Label
	}
	return labels
}
