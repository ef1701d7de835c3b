// Package match implements the pure grammar matchers behind every rule
// category: branch-name shape, conventional-commit structure, identifier
// casing classes, node type suffixes and directory placement.
//
// Matchers are plain functions over strings and path segments. They perform no
// IO, hold no state and are safe to call concurrently. Each matcher returns
// the full list of findings for its category; the rule layer filters that list
// down to the single finding a given rule owns.
package match
