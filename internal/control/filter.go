package control

// Filter is a single-pole low-pass noise filter with a fixed 3/4 weight on
// the previous value: out = (3*prev + raw) / 4, truncating integer
// arithmetic. The zero value starts at 0, so readings ramp in over the
// first few iterations after power-on; the filter is never reset after
// that.
type Filter struct {
	value int
}

// Apply folds one raw sample into the filter and returns the new value.
func (f *Filter) Apply(raw int) int {
	f.value = (f.value*3 + raw) / 4
	return f.value
}

// Value returns the current filtered value.
func (f *Filter) Value() int {
	return f.value
}
