// Package backtrace walks a committed goal node's parent chain back to the
// origin through the engine's merged closed set, then reconstructs the
// per-sequence aligned strings (gap characters inserted wherever a
// dimension did not advance on a given step).
package backtrace
