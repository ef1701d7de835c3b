// Package diag defines the diagnostic model shared by every convention check.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the branch / commit / identifier / path matchers.
//   - Offer a light-weight aggregator (Bag) that lets the engine collect
//     findings without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering responsibilities live in internal/report,
// whereas orchestration lives in internal/engine.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - RuleID – stable string identifier of the rule that produced the finding
//     (e.g. "Commit.UnknownType").
//   - Message – human oriented text; keep it short and actionable.
//   - Span – optional byte range within the checked input.
//   - Seq – registration index of the rule inside its RuleSet; the Bag sorts
//     by it so output order matches rule declaration order.
//
// Keep the data model deterministic: any new fields must avoid side effects so
// the CLI and the scan cache can safely serialise diagnostics.
package diag
