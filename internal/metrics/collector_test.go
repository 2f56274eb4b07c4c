package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestCollectorRecord(t *testing.T) {
	c := NewCollector()
	c.Record(OpMatch, 10*time.Millisecond)
	c.Record(OpMatch, 30*time.Millisecond)
	c.Record(OpConvert, 5*time.Millisecond)

	snap := c.Snapshot()

	match, ok := snap.Operations[OpMatch]
	if !ok {
		t.Fatal("expected match operation in snapshot")
	}
	if match.Count != 2 {
		t.Errorf("match count = %d, want 2", match.Count)
	}
	if match.MinTimeMs != 10 || match.MaxTimeMs != 30 {
		t.Errorf("match min/max = %d/%d, want 10/30", match.MinTimeMs, match.MaxTimeMs)
	}
	if match.AvgTimeMs != 20 {
		t.Errorf("match avg = %f, want 20", match.AvgTimeMs)
	}

	if snap.Operations[OpConvert].Count != 1 {
		t.Errorf("convert count = %d, want 1", snap.Operations[OpConvert].Count)
	}
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Record(OpMatch, time.Millisecond)
		}()
	}
	wg.Wait()

	if got := c.Snapshot().Operations[OpMatch].Count; got != 50 {
		t.Errorf("count = %d, want 50", got)
	}
}
