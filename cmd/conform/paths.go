package main

import (
	"strings"
)

// splitSegments normalizes a CLI path argument into schema segments.
func splitSegments(path string) []string {
	path = strings.Trim(strings.ReplaceAll(path, "\\", "/"), "/")
	return strings.Split(path, "/")
}
