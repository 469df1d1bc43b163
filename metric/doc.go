// Package metric exports search metrics to Prometheus.
//
// PrometheusCollector satisfies exkmeans.MetricsCollector. Batch runs have no
// scrape endpoint, so the CLI dumps the registry in the node_exporter
// textfile format with WriteTextfile when a run ends.
package metric
