package framework

import "testing"

func TestTrackerRecordsParallelSeries(t *testing.T) {
	tr := NewTracker(0)
	tr.Record(1, -10, -20, 5)
	tr.Record(2, -8, -15, 4)

	s := tr.Snapshot()
	if s.Generation != 2 || s.BestFitness != -8 || s.AverageFitness != -15 || s.Diversity != 4 {
		t.Errorf("unexpected current stats: %+v", s)
	}
	if s.History.Len() != 2 {
		t.Fatalf("expected 2 history entries, got %d", s.History.Len())
	}
	if len(s.History.AverageFitness) != 2 || len(s.History.Diversity) != 2 {
		t.Error("history series are not parallel")
	}
	if s.History.BestFitness[0] != -10 || s.History.BestFitness[1] != -8 {
		t.Errorf("unexpected best series: %v", s.History.BestFitness)
	}
}

func TestTrackerRetentionCapDropsOldest(t *testing.T) {
	tr := NewTracker(3)
	for i := 1; i <= 5; i++ {
		v := float64(i)
		tr.Record(i, v, v, v)
	}

	s := tr.Snapshot()
	if s.History.Len() != 3 {
		t.Fatalf("expected history capped at 3, got %d", s.History.Len())
	}
	want := []float64{3, 4, 5}
	for i, v := range want {
		if s.History.BestFitness[i] != v {
			t.Errorf("history[%d] = %v, want %v", i, s.History.BestFitness[i], v)
		}
	}
	if s.Generation != 5 {
		t.Errorf("generation = %d, want 5", s.Generation)
	}
}

func TestTrackerSetLimitTrimsExisting(t *testing.T) {
	tr := NewTracker(0)
	for i := 1; i <= 4; i++ {
		tr.Record(i, float64(i), 0, 0)
	}
	tr.SetLimit(2)

	s := tr.Snapshot()
	if s.History.Len() != 2 {
		t.Fatalf("expected 2 entries after SetLimit, got %d", s.History.Len())
	}
	if s.History.BestFitness[0] != 3 || s.History.BestFitness[1] != 4 {
		t.Errorf("unexpected trimmed series: %v", s.History.BestFitness)
	}
}

func TestTrackerSnapshotIsIsolated(t *testing.T) {
	tr := NewTracker(0)
	tr.Record(1, 1, 1, 1)

	s := tr.Snapshot()
	s.History.BestFitness[0] = 99

	if tr.Snapshot().History.BestFitness[0] != 1 {
		t.Error("mutating a snapshot changed the tracker history")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(0)
	tr.Record(1, 1, 1, 1)
	tr.Reset()

	s := tr.Snapshot()
	if s.Generation != 0 || s.History.Len() != 0 {
		t.Errorf("expected empty stats after reset, got %+v", s)
	}
}
