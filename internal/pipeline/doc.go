// Package pipeline threads seed ranges (or single seed values) through the
// seven stage tables in almanac.Order and reports the minimum final value.
//
// The only contract to implement is Tables (Mapping lookup by Stage).
// This keeps the pipeline swappable and testable.
package pipeline
