package stats

// Continuous accumulates a time-weighted signal via successive (time,
// value) updates: the value reported at Update is held constant until the
// next Update, and the time-weighted mean integrates value*dt over the
// total elapsed time. The zero value is ready to use; integration starts at
// the first Update.
type Continuous struct {
	recordValues bool

	lastTime  float64
	lastValue float64
	started   bool

	totalTime   float64
	weightedSum float64
	min, max    float64
	haveMinMax  bool

	trace []TracePoint
}

// TracePoint is one (time, value) sample retained when RecordValues is
// enabled.
type TracePoint struct {
	Time  float64
	Value float64
}

// NewContinuous constructs a Continuous recorder. If recordValues is true,
// every Update call appends to a retained (time, value) trace.
func NewContinuous(recordValues bool) *Continuous {
	return &Continuous{recordValues: recordValues}
}

// Update reports that the signal held value lastValue from the previous
// update until now, and now takes on value. The first
// call only establishes the starting point; no interval is integrated
// until a second call arrives.
func (c *Continuous) Update(now, value float64) {
	if c.recordValues {
		c.trace = append(c.trace, TracePoint{Time: now, Value: value})
	}

	if !c.started {
		c.started = true
		c.lastTime = now
		c.lastValue = value
		c.min, c.max = value, value
		c.haveMinMax = true
		return
	}

	dt := now - c.lastTime
	if dt > 0 {
		c.weightedSum += c.lastValue * dt
		c.totalTime += dt
	}

	if !c.haveMinMax {
		c.min, c.max = value, value
		c.haveMinMax = true
	} else {
		if value < c.min {
			c.min = value
		}
		if value > c.max {
			c.max = value
		}
	}

	c.lastTime = now
	c.lastValue = value
}

// Mean returns the time-weighted mean over all elapsed time, or 0 if no
// time has elapsed yet.
func (c *Continuous) Mean() float64 {
	if c.totalTime == 0 {
		return 0
	}
	return c.weightedSum / c.totalTime
}

// Min returns the minimum value observed, or 0 if none was recorded.
func (c *Continuous) Min() float64 { return c.min }

// Max returns the maximum value observed, or 0 if none was recorded.
func (c *Continuous) Max() float64 { return c.max }

// TotalTime returns the total elapsed time integrated so far.
func (c *Continuous) TotalTime() float64 { return c.totalTime }

// Trace returns the retained (time, value) samples, or nil if RecordValues
// was not enabled.
func (c *Continuous) Trace() []TracePoint { return c.trace }
