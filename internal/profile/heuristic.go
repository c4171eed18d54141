package profile

import (
	"regexp"
	"strings"

	"resumely/internal/domain"
)

// HeuristicSummary is the fixed marker identifying profiles built without an
// AI parser.
const HeuristicSummary = "Keyword profile generated without AI assistance."

const (
	minTokenLen       = 2
	maxTokenLen       = 39
	maxHeuristicSkill = 50
)

var (
	tokenSplitRe = regexp.MustCompile(`[\s,/]+`)
	tokenCleanRe = regexp.MustCompile(`[^a-zA-Z0-9+#.\-]`)
)

var stopWords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "a": {}, "an": {}, "to": {}, "in": {},
	"of": {}, "for": {}, "on": {}, "with": {}, "at": {}, "by": {}, "from": {},
}

// BuildHeuristic constructs a best-effort profile from résumé text with no
// external service: tokenize, filter, dedupe, and present the surviving
// tokens as skills. The result still goes through Normalize so contact
// fields are regex-derived from the text.
func BuildHeuristic(text string) *domain.CanonicalProfile {
	seen := make(map[string]struct{})
	skills := make([]interface{}, 0, maxHeuristicSkill)

	for _, token := range tokenSplitRe.Split(text, -1) {
		token = tokenCleanRe.ReplaceAllString(token, "")
		if len(token) < minTokenLen || len(token) > maxTokenLen {
			continue
		}
		key := strings.ToLower(token)
		if _, stop := stopWords[key]; stop {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, token)
		if len(skills) >= maxHeuristicSkill {
			break
		}
	}

	return Normalize(map[string]interface{}{
		"skills":  skills,
		"summary": HeuristicSummary,
	}, text)
}
