package stats

// Options is a counter over categorical outcomes, e.g. a Process's
// success/cancel/blocked classification.
type Options struct {
	counts map[string]uint64
	total  uint64
}

// NewOptions constructs an empty Options counter.
func NewOptions() *Options {
	return &Options{counts: make(map[string]uint64)}
}

// Record increments the count for option.
func (o *Options) Record(option string) {
	if o.counts == nil {
		o.counts = make(map[string]uint64)
	}
	o.counts[option]++
	o.total++
}

// Count returns the count recorded for option.
func (o *Options) Count(option string) uint64 {
	return o.counts[option]
}

// Total returns the total number of recordings across all options.
func (o *Options) Total() uint64 { return o.total }

// Counts returns a copy of the per-option counts.
func (o *Options) Counts() map[string]uint64 {
	cp := make(map[string]uint64, len(o.counts))
	for k, v := range o.counts {
		cp[k] = v
	}
	return cp
}
