package profile

import (
	"fmt"
	"regexp"
	"strings"

	"resumely/internal/domain"
)

var (
	emailRe = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	// Candidate phone runs: optional leading +, digits with embedded
	// separators. Candidates are validated by digit count afterwards.
	phoneRe     = regexp.MustCompile(`\+?\d[\d\s().-]{6,}\d`)
	digitRe     = regexp.MustCompile(`\d`)
	listSplitRe = regexp.MustCompile(`[,\n]`)
)

// Normalize coerces a loosely-typed candidate object (from the AI parser or
// the heuristic builder) into the canonical profile schema. It is total:
// absent or malformed fields default rather than error. It is also
// idempotent, which the AI repair path relies on.
//
// originalText is the extracted résumé text; it backs the regex fallback for
// contact email and phone and must be threaded through every call even when
// structured contact data is present.
func Normalize(raw map[string]interface{}, originalText string) *domain.CanonicalProfile {
	p := domain.NewCanonicalProfile()
	if raw == nil {
		raw = map[string]interface{}{}
	}

	p.Skills = coerceStringList(raw["skills"])
	p.Summary = coerceString(raw["summary"])
	p.Experience = normalizeExperience(raw["experience"])
	p.Education = coerceEducation(raw["education"])
	p.Certifications = coerceStringList(raw["certifications"])
	p.Languages = coerceStringList(raw["languages"])
	p.Links = coerceStringList(raw["links"])
	p.Contact = normalizeContact(raw["contact"], originalText)

	return p
}

func normalizeContact(v interface{}, originalText string) domain.Contact {
	var c domain.Contact
	if m, ok := v.(map[string]interface{}); ok {
		c.Name = optString(m, "name", "full_name")
		c.Email = optString(m, "email")
		c.Phone = optString(m, "phone", "phone_number")
		c.Location = optString(m, "location", "address")
	}

	if c.Email == nil {
		if email := FindEmail(originalText); email != "" {
			c.Email = &email
		}
	}
	if c.Phone == nil {
		if phone := FindPhone(originalText); phone != "" {
			c.Phone = &phone
		}
	}
	return c
}

func normalizeExperience(v interface{}) []domain.Experience {
	entries, ok := v.([]interface{})
	if !ok {
		return []domain.Experience{}
	}

	out := make([]domain.Experience, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		resp := m["responsibilities"]
		if resp == nil {
			resp = m["duties"]
		}
		out = append(out, domain.Experience{
			Title:            firstString(m, "title", "role"),
			Company:          firstString(m, "company", "employer"),
			StartDate:        firstString(m, "start_date", "startDate", "from"),
			EndDate:          firstString(m, "end_date", "endDate", "to"),
			Responsibilities: coerceStringList(resp),
		})
	}
	return out
}

// coerceEducation array-coerces the education field. A bare degree string is
// accepted as a single entry but never synthesized into a structured record.
func coerceEducation(v interface{}) []interface{} {
	switch t := v.(type) {
	case []interface{}:
		return t
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []interface{}{s}
		}
	}
	return []interface{}{}
}

// coerceStringList accepts an array (entries stringified, trimmed, blanks
// dropped) or a single string (split on comma/newline); anything else yields
// an empty list.
func coerceStringList(v interface{}) []string {
	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := strings.TrimSpace(stringify(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		parts := listSplitRe.Split(t, -1)
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func coerceString(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// firstString coalesces alternate key spellings to the first present,
// non-blank value.
func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s := strings.TrimSpace(stringify(m[key])); s != "" {
			return s
		}
	}
	return ""
}

func optString(m map[string]interface{}, keys ...string) *string {
	if s := firstString(m, keys...); s != "" {
		return &s
	}
	return nil
}

// FindEmail returns the first email-looking token in text, or "".
func FindEmail(text string) string {
	return emailRe.FindString(text)
}

// FindPhone returns the first phone-looking run in text containing at least
// eight digits, or "".
func FindPhone(text string) string {
	for _, candidate := range phoneRe.FindAllString(text, -1) {
		if len(digitRe.FindAllString(candidate, -1)) >= 8 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// IsSparse reports whether a normalized profile is too empty to be useful:
// no non-blank skill, no experience, and no contact name, email, or phone.
// The AI parser uses it to decide whether a stricter second attempt is
// warranted. Other fields (education, certifications, languages, links) are
// deliberately not consulted.
func IsSparse(p *domain.CanonicalProfile) bool {
	for _, skill := range p.Skills {
		if strings.TrimSpace(skill) != "" {
			return false
		}
	}
	if len(p.Experience) > 0 {
		return false
	}
	if p.Contact.Name != nil || p.Contact.Email != nil || p.Contact.Phone != nil {
		return false
	}
	return true
}
