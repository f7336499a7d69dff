package ident

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var wsRe = regexp.MustCompile(`\s+`)

// NormalizeHostelID canonicalizes an externally supplied hostel identifier.
// Callers paste ids with stray whitespace, missing dashes, or dashes in the
// wrong places; this strips whitespace and dashes down to the bare hex form
// and re-emits the canonical lowercase 8-4-4-4-12 grouping. Anything that
// does not parse as a UUID after cleanup is rejected.
//
// Every entry point that accepts a hostel id must go through this function
// rather than cleaning the value itself.
func NormalizeHostelID(raw string) (string, error) {
	cleaned := wsRe.ReplaceAllString(strings.TrimSpace(raw), "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	if cleaned == "" {
		return "", fmt.Errorf("hostel id is empty")
	}

	id, err := uuid.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid hostel id %q: %w", raw, err)
	}
	return id.String(), nil
}
