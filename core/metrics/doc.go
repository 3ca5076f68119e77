// Package metrics defines the sink interface used by the station to report
// booking outcomes, queue promotions and occupancy. Sinks are built from
// configuration through a factory registry; several configured sinks are
// combined into a MultiSink.
package metrics
