package metric

import (
	"fmt"
	"io"
	"sort"

	"github.com/samber/lo"

	"github.com/mlcsim/mlcsim/sim"
)

// SeriesSummary aggregates one named series.
type SeriesSummary struct {
	Count       int
	BitsRead    uint64
	BitsWritten uint64
	FirstTime   int64
	LastTime    int64
}

// Throughput returns bits moved per tick of simulated time, counted from tick 0
// to the last observation.
func (s SeriesSummary) Throughput() float64 {
	if s.LastTime <= 0 {
		return 0
	}
	return float64(s.BitsRead+s.BitsWritten) / float64(s.LastTime)
}

// Summary aggregates every series of a storage.
type Summary struct {
	Series map[string]SeriesSummary
}

// Summarize computes per-series statistics.
// Safe for nil or empty storages (returns an empty summary).
func Summarize(s *InMemoryStorage) *Summary {
	summary := &Summary{Series: make(map[string]SeriesSummary)}
	if s == nil {
		return summary
	}
	for name, points := range s.series {
		if len(points) == 0 {
			continue
		}
		ss := SeriesSummary{
			Count:     len(points),
			FirstTime: lo.MinBy(points, func(a, b TimeSeries) bool { return a.Time < b.Time }).Time,
			LastTime:  lo.MaxBy(points, func(a, b TimeSeries) bool { return a.Time > b.Time }).Time,
		}
		for _, p := range points {
			if p.MetricType == sim.MetricRead {
				ss.BitsRead += uint64(p.Value)
			} else {
				ss.BitsWritten += uint64(p.Value)
			}
		}
		summary.Series[name] = ss
	}
	return summary
}

// Print writes a human-readable table of the summary to w.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Device Metrics ===")
	names := lo.Keys(s.Series)
	sort.Strings(names)
	for _, name := range names {
		ss := s.Series[name]
		fmt.Fprintf(w, "%-8s: ops=%d read=%d bits written=%d bits span=[%d,%d] throughput=%.3f bits/tick\n",
			name, ss.Count, ss.BitsRead, ss.BitsWritten, ss.FirstTime, ss.LastTime, ss.Throughput())
	}
}
