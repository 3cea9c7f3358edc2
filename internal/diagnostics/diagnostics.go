// Package diagnostics assembles the human-readable feedback attached to a
// verification verdict. Deterministic text assembly, not a classifier.
package diagnostics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/proofgate/internal/vocab"
)

const maxNamedKeywords = 3

// Suggestions produces ordered feedback from the verdict and the matched
// and detected labels.
//
// Matched labels are deduplicated and sorted lexically before the first
// three are named, so diagnostics are reproducible regardless of model
// output order. The result is never empty when valid is false or matches
// are sparse.
func Suggestions(valid bool, matched, detected []string, cat vocab.Category) []string {
	var suggestions []string

	switch {
	case !valid:
		suggestions = append(suggestions,
			fmt.Sprintf("Image does not appear to show %s activities.", cat),
			"Please upload clear photos showing relevant work or activities.",
		)
	case len(matched) < 2:
		suggestions = append(suggestions,
			"Image verification passed but confidence is low.",
			"Consider uploading additional photos for better verification.",
		)
	default:
		named := dedupeSorted(matched)
		if len(named) > maxNamedKeywords {
			named = named[:maxNamedKeywords]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("AI detected %s-related content: %s", cat, strings.Join(named, ", ")),
		)
	}

	if len(detected) == 0 {
		suggestions = append(suggestions,
			"No clear objects detected. Ensure good lighting and focus.",
		)
	}

	return suggestions
}

func dedupeSorted(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}
