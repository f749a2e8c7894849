// Package metrics records configuration load and link check metrics.
//
// Components receive a Recorder and default to NoopRecorder, so callers never
// nil-check:
//
//	w := watch.New(path, watch.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// HTTPHandler serves a registry in the Prometheus exposition format.
package metrics
