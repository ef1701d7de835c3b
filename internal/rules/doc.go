// Package rules defines the rule model of the conform engine: Rule, the
// Category dispatch enum, the tagged Request variants and the immutable Set.
//
// A Rule is one named, independently evaluable convention check. Its Match
// function wraps a pure matcher from internal/match and yields at most one
// finding per request. Message templates use {value} and {expected}
// placeholders filled from the finding.
//
// A Set is built once (from config or DefaultRules) and never mutated during
// validation. Construction rejects duplicate rule IDs; enable/disable and
// severity overrides are applied at build time.
package rules
