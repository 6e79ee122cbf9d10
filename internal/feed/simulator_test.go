package feed

import (
	"testing"

	"github.com/covlens/covlens/internal/classify"
	"github.com/covlens/covlens/internal/model"
)

func testConfig() model.FeedConfig {
	return model.FeedConfig{
		Seed:            42,
		EventsPerSecond: 100,
		BufferSize:      10,
	}
}

func TestSimulator_DeterministicSnippets(t *testing.T) {
	a := NewSimulator(testConfig(), classify.New())
	b := NewSimulator(testConfig(), classify.New())

	for i := 0; i < 50; i++ {
		ea := a.emit()
		eb := b.emit()
		if ea.Text != eb.Text {
			t.Fatalf("Event %d: texts diverged with same seed:\n%q\n%q", i, ea.Text, eb.Text)
		}
		if ea.Result != eb.Result {
			t.Fatalf("Event %d: scores diverged for identical text", i)
		}
	}
}

func TestSimulator_BufferBound(t *testing.T) {
	s := NewSimulator(testConfig(), classify.New())

	for i := 0; i < 30; i++ {
		s.emit()
	}

	if s.Len() != 10 {
		t.Errorf("Expected buffer capped at 10, got %d", s.Len())
	}
}

func TestSimulator_RecentNewestFirst(t *testing.T) {
	s := NewSimulator(testConfig(), classify.New())

	var last Event
	for i := 0; i < 5; i++ {
		last = s.emit()
	}

	recent := s.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(recent))
	}
	if recent[0].ID != last.ID {
		t.Error("Expected newest event first")
	}

	all := s.Recent(0)
	if len(all) != 5 {
		t.Errorf("Expected all 5 events for n<=0, got %d", len(all))
	}
}

func TestSimulator_EventsStream(t *testing.T) {
	s := NewSimulator(testConfig(), classify.New())

	var emitted []Event
	for i := 0; i < 3; i++ {
		emitted = append(emitted, s.emit())
	}

	for i, want := range emitted {
		select {
		case got := <-s.Events():
			if got.ID != want.ID {
				t.Errorf("Event %d: expected ID %s, got %s", i, want.ID, got.ID)
			}
		default:
			t.Fatalf("Expected event %d to be buffered on the stream", i)
		}
	}
}

func TestSimulator_EventsStreamDropsWhenFull(t *testing.T) {
	s := NewSimulator(testConfig(), classify.New())

	// Buffer size is 10; without a receiver the extra emits must be
	// dropped from the stream, not block the emit loop
	var last Event
	for i := 0; i < 25; i++ {
		last = s.emit()
	}

	count := 0
drain:
	for {
		select {
		case <-s.Events():
			count++
		default:
			break drain
		}
	}

	if count != 10 {
		t.Errorf("Expected stream capped at 10 buffered events, got %d", count)
	}

	// The ring buffer still saw everything the stream dropped
	if recent := s.Recent(1); recent[0].ID != last.ID {
		t.Error("Expected Recent to retain the newest event")
	}
}

func TestSimulator_EventsAreScored(t *testing.T) {
	s := NewSimulator(testConfig(), classify.New())

	verdicts := make(map[model.Verdict]int)
	for i := 0; i < 100; i++ {
		e := s.emit()
		if e.Result.Verdict == "" {
			t.Fatal("Expected every event to carry a verdict")
		}
		if e.ID == "" || e.Source == "" {
			t.Fatal("Expected event metadata to be populated")
		}
		verdicts[e.Result.Verdict]++
	}

	// Both pools should show up over 100 draws
	if verdicts[model.VerdictLikelyMisinfo] == 0 {
		t.Error("Expected some misinformation events")
	}
	if verdicts[model.VerdictLikelyReliable] == 0 {
		t.Error("Expected some reliable events")
	}
}
