// Package metrics holds the prometheus collectors for store activity.
package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Registry is the process-wide registry the notes collectors live in.
var Registry = prometheus.NewRegistry()

var (
	// StoreOperations counts store calls by collection and operation.
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notes",
			Name:      "store_operations_total",
			Help:      "Number of persistence store operations",
		},
		[]string{"collection", "op"},
	)

	// StoreErrors counts store calls that returned an error.
	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notes",
			Name:      "store_errors_total",
			Help:      "Number of failed persistence store operations",
		},
		[]string{"collection", "op"},
	)

	// FileWriteSeconds observes whole-file rewrites of a collection.
	FileWriteSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "notes",
			Name:      "file_write_seconds",
			Help:      "Time spent rewriting a collection file",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10),
		},
	)
)

func init() {
	Registry.MustRegister(StoreOperations, StoreErrors, FileWriteSeconds)
}

// ObserveOp records one store operation and, when err is not nil, a failure.
func ObserveOp(collection, op string, err error) {
	StoreOperations.WithLabelValues(collection, op).Inc()
	if err != nil {
		StoreErrors.WithLabelValues(collection, op).Inc()
	}
}

// ObserveWrite records the duration of a file rewrite started at start.
func ObserveWrite(start time.Time) {
	FileWriteSeconds.Observe(time.Since(start).Seconds())
}

// OpCount is one row of the store statistics.
type OpCount struct {
	Collection string
	Op         string
	Count      float64
	Errors     float64
}

// Snapshot gathers the operation counters, sorted by collection then op.
// Writes holds the number of file rewrites observed so far.
func Snapshot() (ops []OpCount, writes uint64, err error) {
	families, err := Registry.Gather()
	if err != nil {
		return nil, 0, err
	}

	byKey := map[[2]string]*OpCount{}
	row := func(m *dto.Metric) *OpCount {
		var key [2]string
		for _, lp := range m.GetLabel() {
			switch lp.GetName() {
			case "collection":
				key[0] = lp.GetValue()
			case "op":
				key[1] = lp.GetValue()
			}
		}
		if r, ok := byKey[key]; ok {
			return r
		}
		r := &OpCount{Collection: key[0], Op: key[1]}
		byKey[key] = r
		return r
	}

	for _, mf := range families {
		switch mf.GetName() {
		case "notes_store_operations_total":
			for _, m := range mf.GetMetric() {
				row(m).Count = m.GetCounter().GetValue()
			}
		case "notes_store_errors_total":
			for _, m := range mf.GetMetric() {
				row(m).Errors = m.GetCounter().GetValue()
			}
		case "notes_file_write_seconds":
			for _, m := range mf.GetMetric() {
				writes += m.GetHistogram().GetSampleCount()
			}
		}
	}

	ops = make([]OpCount, 0, len(byKey))
	for _, r := range byKey {
		ops = append(ops, *r)
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Collection != ops[j].Collection {
			return ops[i].Collection < ops[j].Collection
		}
		return ops[i].Op < ops[j].Op
	})
	return ops, writes, nil
}
