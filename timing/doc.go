// Package timing provides a phase-scoped stopwatch for logging how long
// each stage of an alignment run takes. A Timer logs its start eagerly
// and its elapsed duration on an explicit Stop call, both through a
// structured go.uber.org/zap logger.
package timing
