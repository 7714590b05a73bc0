package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers at construction and write atomics directly in Update
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// Lines renders every metric as "key=value", ints first, each group in key order
// Used by the debug overlay and the exit log line
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Ints.Count()+r.Bools.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	return lines
}
