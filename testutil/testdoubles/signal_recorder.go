package testdoubles

// SignalRecorder captures emissions from multiple model streams into one
// ordered trace, so tests can assert on the relative order of changing,
// changed, errors-changed, and edit-lifecycle broadcasts.
type SignalRecorder struct {
	trace []string
}

// NewSignalRecorder creates a new SignalRecorder instance.
func NewSignalRecorder() *SignalRecorder {
	return &SignalRecorder{}
}

// Named returns a subscriber for a property-name stream. Each emission is
// recorded as "<stream>:<property>".
func (r *SignalRecorder) Named(stream string) func(string) {
	return func(name string) {
		r.trace = append(r.trace, stream+":"+name)
	}
}

// Plain returns a subscriber for a payload-free lifecycle stream. Each
// emission is recorded as the stream label itself.
func (r *SignalRecorder) Plain(stream string) func() {
	return func() {
		r.trace = append(r.trace, stream)
	}
}

// Trace returns the recorded emissions in order.
func (r *SignalRecorder) Trace() []string {
	return append([]string(nil), r.trace...)
}

// Reset clears the recorded trace.
func (r *SignalRecorder) Reset() {
	r.trace = nil
}
