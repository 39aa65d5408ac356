// Package observability groups the service's logging, metrics and tracing support.
//
// Subpackages:
//   - logging: slog loggers with request id propagation
//   - metrics: Prometheus gauges and counters for forum activity
//   - tracing: OpenTelemetry tracer and HTTP middleware
package observability
