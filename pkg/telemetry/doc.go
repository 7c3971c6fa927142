// Package telemetry reports morphed view updates to Prometheus and
// OpenTelemetry.
//
// Both Metrics and Tracer implement morphed.Observer:
//
//	m := telemetry.NewMetrics(telemetry.WithRegistry(reg))
//	tr := telemetry.NewTracer()
//	view, err := morphed.New(root, update,
//	    morphed.WithObserver(m),
//	    morphed.WithObserver(tr),
//	)
//
// Metrics collected (namespace "morphed" by default):
//   - morphed_updates_total: counter of passes by mode and status
//   - morphed_update_duration_seconds: histogram of pass duration by mode
//   - morphed_update_errors_total: counter of failed passes by mode and error code
//   - morphed_patches_total: counter of applied patches by op
//   - morphed_ignored_skipped_total: counter of element pairs left untouched
//
// The tracer uses the global OpenTelemetry tracer provider unless one is
// given with WithTracerProvider.
package telemetry
