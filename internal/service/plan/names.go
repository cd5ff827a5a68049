package plan

import (
	"regexp"
	"strings"

	"github.com/ruchita2103/ai-business-assistant/internal/constants"
)

// namePattern matches anything that looks like a bulleted or numbered name
// suggestion: optional leading hyphen/digits/period/whitespace, then a
// capitalized phrase. It deliberately matches capitalized phrases anywhere in
// the summary, not only the name-suggestion section; over-matching section
// headers or proper nouns is accepted heuristic behavior.
var namePattern = regexp.MustCompile(`[-\d]*\.?\s*([A-Z][A-Za-z0-9 ]+)`)

// ExtractNames pulls up to 5 capitalized-phrase candidates out of the
// generated summary, in order of appearance. Candidates of length <= 2 after
// trimming are dropped; duplicates pass through untouched.
func ExtractNames(summary string) []string {
	matches := namePattern.FindAllStringSubmatch(summary, -1)

	names := make([]string, 0, constants.ExtractionConfig.MaxNameSuggestions)
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if len(name) < constants.ExtractionConfig.MinNameLength {
			continue
		}
		names = append(names, name)
		if len(names) == constants.ExtractionConfig.MaxNameSuggestions {
			break
		}
	}

	return names
}
