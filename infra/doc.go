// Package infra contains technical adapters such as the zerolog logger,
// the Prometheus sink, journal backends and state stores. These packages
// should depend only on the interfaces defined in the core packages.
package infra
