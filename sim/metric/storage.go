// Package metric records timed observations of device operations.
// It depends only on the sim value types and stores pure data.
package metric

import (
	"sort"

	"github.com/samber/lo"

	"github.com/mlcsim/mlcsim/sim"
)

// TimeSeries is one observation: how many bits an operation moved and when it completed.
type TimeSeries struct {
	Time       int64
	Value      uint32
	MetricType sim.MetricType
}

// InMemoryStorage keeps every observation in memory, grouped by series name.
// It implements sim.MetricStorage.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type InMemoryStorage struct {
	series map[string][]TimeSeries
}

var _ sim.MetricStorage = (*InMemoryStorage)(nil)

// NewInMemoryStorage creates an empty storage.
func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{series: make(map[string][]TimeSeries)}
}

// PutMetric appends one observation to the named series.
func (s *InMemoryStorage) PutMetric(series string, bitAmount uint32, timestamp int64, metricType sim.MetricType) {
	s.series[series] = append(s.series[series], TimeSeries{
		Time:       timestamp,
		Value:      bitAmount,
		MetricType: metricType,
	})
}

// ListMetric returns the series names in sorted order.
func (s *InMemoryStorage) ListMetric() []string {
	names := lo.Keys(s.series)
	sort.Strings(names)
	return names
}

// Series returns a copy of the observations recorded under name, in insertion order.
func (s *InMemoryStorage) Series(name string) []TimeSeries {
	return append([]TimeSeries(nil), s.series[name]...)
}
