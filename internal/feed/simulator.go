package feed

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/covlens/covlens/internal/model"
)

// Classifier scores each simulated snippet as it is emitted
type Classifier interface {
	Classify(text string) model.ScoreResult
}

// Event is one entry of the simulated live feed
type Event struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Source    string            `json:"source"`
	Text      string            `json:"text"`
	Result    model.ScoreResult `json:"result"`
}

// Fraction of simulated snippets drawn from the misinformation pool
const misinfoShare = 0.15

var reliableSnippets = []string{
	"Health officials reported %d new cases today, citing data from the regional surveillance study.",
	"A peer-reviewed clinical trial with %d participants published interim vaccination results.",
	"The CDC updated its guidance after reviewing evidence from %d hospitals.",
	"Scientists presented research covering %d regions at the weekly briefing.",
	"Doctors say the published data from %d sites matches earlier study findings.",
}

var misinfoSnippets = []string{
	"WAKE UP!!! %d doctors silenced for exposing the plandemic cover up!!!",
	"SHARE BEFORE DELETED: the microchip agenda behind dose number %d!!!",
	"5g towers activated in %d cities right before the outbreak, not a coincidence!!!",
	"Big pharma hides the side effects, %d victims and the mainstream media says NOTHING!!!",
}

var sources = []string{
	"social-stream", "open-web", "forum-watch", "newsletter-scan", "video-captions",
}

// Simulator emits synthetic feed events at a fixed pace and scores
// each one. It is explicitly a simulation for the dashboard's live
// tab, not an ingestion pipeline: snippet choice is driven by a
// seeded generator so runs are reproducible.
type Simulator struct {
	classifier Classifier
	limiter    *rate.Limiter
	stream     chan Event

	mu     sync.Mutex
	rng    *rand.Rand
	events []Event
	max    int
}

// NewSimulator creates a simulator from the feed configuration
func NewSimulator(cfg model.FeedConfig, classifier Classifier) *Simulator {
	max := cfg.BufferSize
	if max <= 0 {
		max = 200
	}
	eps := cfg.EventsPerSecond
	if eps <= 0 {
		eps = 0.5
	}

	return &Simulator{
		classifier: classifier,
		limiter:    rate.NewLimiter(rate.Limit(eps), 1),
		stream:     make(chan Event, max),
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		max:        max,
	}
}

// Start runs the emit loop until the context is cancelled. Call it in
// its own goroutine.
func (s *Simulator) Start(ctx context.Context) {
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return
		}
		s.emit()
	}
}

// emit generates, scores, and buffers one event
func (s *Simulator) emit() Event {
	s.mu.Lock()
	text := s.nextText()
	source := sources[s.rng.Intn(len(sources))]
	s.mu.Unlock()

	event := Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    source,
		Text:      text,
		Result:    s.classifier.Classify(text),
	}

	s.mu.Lock()
	s.events = append(s.events, event)
	if len(s.events) > s.max {
		s.events = s.events[len(s.events)-s.max:]
	}
	s.mu.Unlock()

	// Lagging stream receivers lose events rather than stall the loop
	select {
	case s.stream <- event:
	default:
	}

	return event
}

// Events streams emitted events as they happen. The channel is never
// closed and holds at most the buffer size; when no receiver keeps up,
// new events are dropped from the stream (Recent still has them).
func (s *Simulator) Events() <-chan Event {
	return s.stream
}

// nextText draws the next snippet; caller holds the lock
func (s *Simulator) nextText() string {
	n := s.rng.Intn(900) + 3
	if s.rng.Float64() < misinfoShare {
		return fmt.Sprintf(misinfoSnippets[s.rng.Intn(len(misinfoSnippets))], n)
	}
	return fmt.Sprintf(reliableSnippets[s.rng.Intn(len(reliableSnippets))], n)
}

// Recent returns up to n events, newest first
func (s *Simulator) Recent(n int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || n > len(s.events) {
		n = len(s.events)
	}

	out := make([]Event, n)
	for i := 0; i < n; i++ {
		out[i] = s.events[len(s.events)-1-i]
	}
	return out
}

// Len returns the number of buffered events
func (s *Simulator) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
