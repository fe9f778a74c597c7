package domain

import "strings"

// TypeFilter selects which speaker types a search considers.
type TypeFilter string

const (
	TypeFilterAll    TypeFilter = "All"
	TypeFilterMember TypeFilter = "Member"
	TypeFilterPro    TypeFilter = "Pro"
)

func (f TypeFilter) matches(t SpeakerType) bool {
	switch f {
	case TypeFilterMember:
		return t == SpeakerTypeMember
	case TypeFilterPro:
		return t == SpeakerTypeProfessional
	default:
		return true
	}
}

// FilterSpeakers returns the speakers matching the query and type filter.
// Matching is a case-insensitive substring check against the name, any
// topic, or the chapter (missing chapter treated as empty). It is not
// tokenized or fuzzy. An empty trimmed query matches everything. Result
// order follows the input order; there is no re-ranking.
func FilterSpeakers(speakers []Speaker, query string, filter TypeFilter) []Speaker {
	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]Speaker, 0, len(speakers))
	for _, s := range speakers {
		if !filter.matches(s.Type) {
			continue
		}
		if q != "" && !matchesQuery(s, q) {
			continue
		}
		matched = append(matched, s)
	}
	return matched
}

func matchesQuery(s Speaker, q string) bool {
	if strings.Contains(strings.ToLower(s.Name), q) {
		return true
	}
	for _, topic := range s.Topics {
		if strings.Contains(strings.ToLower(topic), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(s.Chapter), q)
}
