package utils

import (
	"sort"
	"strings"
	"time"

	"github.com/jasontodev/NoxusIoniaRL/common/utils/number"
)

type Stopwatch struct {
	name    string
	order   []string
	started map[string]time.Time
	elapsed map[string]time.Duration
}

func MakeStopwatch(name string) *Stopwatch {
	return &Stopwatch{
		name:    name,
		order:   make([]string, 0),
		started: make(map[string]time.Time),
		elapsed: make(map[string]time.Duration),
	}
}

func (s *Stopwatch) Start(label string) {
	if _, seen := s.elapsed[label]; !seen {
		s.order = append(s.order, label)
		s.elapsed[label] = 0
	}

	s.started[label] = time.Now()
}

func (s *Stopwatch) Stop(label string) time.Duration {
	start, ok := s.started[label]
	if !ok {
		return 0
	}

	d := time.Since(start)
	s.elapsed[label] += d
	delete(s.started, label)

	return d
}

func (s *Stopwatch) Get(label string) time.Duration {
	return s.elapsed[label]
}

// String lists the measures, slowest first.
func (s *Stopwatch) String() string {
	labels := make([]string, len(s.order))
	copy(labels, s.order)

	sort.SliceStable(labels, func(i, j int) bool {
		return s.elapsed[labels[i]] > s.elapsed[labels[j]]
	})

	var b strings.Builder
	b.WriteString(s.name)
	for _, label := range labels {
		b.WriteString("\n  " + label + ": " + number.FloatToStr(number.DurationMs(s.elapsed[label]), 3) + "ms")
	}

	return b.String()
}
