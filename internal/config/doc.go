// Package config assembles and validates the runtime configuration a
// pastar invocation is built from: input/output paths, cost preset,
// worker topology, and routing scheme. A Config is a plain struct filled
// by the CLI and checked once by Validate before anything runs.
package config
