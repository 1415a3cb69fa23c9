// Package telemetry initializes the OpenTelemetry SDK for the nextleg CLI:
// one TracerProvider and one MeterProvider, both exporting over OTLP gRPC.
// When telemetry is disabled nothing is exported and no connection is made.
package telemetry
