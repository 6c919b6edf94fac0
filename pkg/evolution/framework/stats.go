package framework

// Stats is a point-in-time view of an algorithm's progress. History values
// are always recorded in the internal maximize convention, for every
// algorithm, so best fitness never decreases across entries.
type Stats struct {
	Generation     int
	BestFitness    float64
	AverageFitness float64
	Diversity      float64
	History        History
}

// History holds one entry per completed generation, as three parallel
// series.
type History struct {
	BestFitness    []float64
	AverageFitness []float64
	Diversity      []float64
}

// Len returns the number of recorded generations.
func (h History) Len() int {
	return len(h.BestFitness)
}

// Tracker accumulates per-generation statistics for one algorithm
// instance. A positive limit caps the history as an append-only log that
// drops its oldest entries.
type Tracker struct {
	limit   int
	current Stats
}

func NewTracker(limit int) *Tracker {
	return &Tracker{limit: limit}
}

// Record appends one generation entry and updates the current view.
func (t *Tracker) Record(generation int, best, average, diversity float64) {
	t.current.Generation = generation
	t.current.BestFitness = best
	t.current.AverageFitness = average
	t.current.Diversity = diversity

	h := &t.current.History
	h.BestFitness = appendCapped(h.BestFitness, best, t.limit)
	h.AverageFitness = appendCapped(h.AverageFitness, average, t.limit)
	h.Diversity = appendCapped(h.Diversity, diversity, t.limit)
}

// SetLimit changes the retention cap, trimming existing history when the
// new cap is smaller.
func (t *Tracker) SetLimit(limit int) {
	t.limit = limit
	if limit <= 0 {
		return
	}
	h := &t.current.History
	h.BestFitness = trimOldest(h.BestFitness, limit)
	h.AverageFitness = trimOldest(h.AverageFitness, limit)
	h.Diversity = trimOldest(h.Diversity, limit)
}

// Snapshot returns a copy whose history slices share no storage with the
// tracker.
func (t *Tracker) Snapshot() Stats {
	out := t.current
	out.History = History{
		BestFitness:    append([]float64(nil), t.current.History.BestFitness...),
		AverageFitness: append([]float64(nil), t.current.History.AverageFitness...),
		Diversity:      append([]float64(nil), t.current.History.Diversity...),
	}
	return out
}

// Reset drops all recorded history and zeroes the current view.
func (t *Tracker) Reset() {
	t.current = Stats{}
}

func appendCapped(series []float64, v float64, limit int) []float64 {
	series = append(series, v)
	return trimOldest(series, limit)
}

func trimOldest(series []float64, limit int) []float64 {
	if limit <= 0 || len(series) <= limit {
		return series
	}
	copy(series, series[len(series)-limit:])
	return series[:limit]
}
