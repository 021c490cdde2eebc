// Package metrics provides build observability for trakai.
//
// Components receive a Recorder. NoopRecorder is the default and
// PrometheusRecorder is swapped in when the build is asked to write a
// metrics file:
//
//	reg := prometheus.NewRegistry()
//	recorder := metrics.NewPrometheusRecorder(reg)
//	builder := site.NewBuilder(cfg, site.WithRecorder(recorder))
//	...
//	_ = metrics.WriteTextfile(path, reg)
//
// The textfile format is the one read by node_exporter's textfile collector,
// which suits a one-shot CLI better than an HTTP endpoint.
package metrics
