package trace

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricRecordsDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exprtrace",
		Subsystem: "trace",
		Name:      "records_decoded_total",
		Help:      "Number of trace records decoded, by record kind.",
	}, []string{"kind"})

	metricErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exprtrace",
		Subsystem: "trace",
		Name:      "errors_total",
		Help:      "Number of streams that transitioned to errored, by error kind.",
	}, []string{"kind"})
)
