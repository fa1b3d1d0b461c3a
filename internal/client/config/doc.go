// Package config loads console settings from defaults, the environment,
// an optional JSON file and command-line flags, in that order.
//
// The JSON loader uses timex.Duration for intervals, so values can be
// either strings like "5s" or integer nanoseconds.
package config
