// Package slider holds the home page hero slides and their rotation state.
package slider

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultInterval is how long each slide stays up before auto-advancing
const DefaultInterval = 6 * time.Second

var ErrSlideOutOfRange = errors.New("slide index out of range")

type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

type Slide struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	CTA          Link   `json:"cta"`
	SecondaryCTA Link   `json:"secondaryCta"`
}

// Slider cycles through a fixed set of slides. It is safe for concurrent use.
type Slider struct {
	mu      sync.RWMutex
	slides  []Slide
	current int
	paused  bool
}

func New(slides []Slide) *Slider {
	return &Slider{slides: slides}
}

func (s *Slider) Len() int {
	return len(s.slides)
}

// Slides returns a copy of the slides in display order
func (s *Slider) Slides() []Slide {
	out := make([]Slide, len(s.slides))
	copy(out, s.slides)
	return out
}

func (s *Slider) Index() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Current returns the active slide; ok is false when there are no slides
func (s *Slider) Current() (Slide, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.slides) == 0 {
		return Slide{}, false
	}
	return s.slides[s.current], true
}

// Next advances to the following slide, wrapping to the first after the last
func (s *Slider) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return 0
	}
	s.current = (s.current + 1) % len(s.slides)
	return s.current
}

// Prev goes back one slide, wrapping to the last before the first
func (s *Slider) Prev() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return 0
	}
	s.current = (s.current - 1 + len(s.slides)) % len(s.slides)
	return s.current
}

func (s *Slider) GoTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.slides) {
		return ErrSlideOutOfRange
	}
	s.current = index
	return nil
}

func (s *Slider) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

func (s *Slider) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

func (s *Slider) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

// Run auto-advances the slider every interval until ctx is cancelled
func (s *Slider) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	s.RunTicks(ctx, ticker.C)
}

// RunTicks advances once per received tick, skipping ticks while paused
func (s *Slider) RunTicks(ctx context.Context, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
			if !s.Paused() {
				s.Next()
			}
		}
	}
}
