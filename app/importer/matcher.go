package importer

import (
	"strings"
)

// Built-in candidate spellings per canonical role. Order encodes
// priority: more specific terms come first so the exact pass prefers
// them. Alias files append to these lists, they never replace them.
var defaultRoleCandidates = map[TableKind]map[Role][]string{
	TableKeywords: {
		RoleName:        {"query", "keyword", "queries", "top queries", "top query"},
		RoleClicks:      {"clicks", "click"},
		RoleImpressions: {"impressions", "impr", "impression"},
		RoleCTR:         {"ctr", "click-through rate", "click through rate"},
		RolePosition:    {"position", "avg position", "average position"},
	},
	TablePages: {
		RoleName:        {"page", "url", "link", "page url", "page_url", "page/path"},
		RoleClicks:      {"clicks", "click"},
		RoleImpressions: {"impressions", "impr", "impression"},
		RoleCTR:         {"ctr", "click-through rate", "click through rate"},
		RolePosition:    {"position", "avg position", "average position"},
	},
}

var defaultSheetCandidates = map[TableKind][]string{
	TableKeywords: {"keywords", "query", "queries", "top queries"},
	TablePages:    {"pages", "page", "top pages"},
}

// Matcher maps loosely-named export headers and workbook sheet names
// onto canonical roles. The same two-pass routine serves both jobs,
// only the candidate lists differ.
type Matcher struct {
	roles  map[TableKind]map[Role][]string
	sheets map[TableKind][]string
}

func NewMatcher() *Matcher {
	m := &Matcher{
		roles:  make(map[TableKind]map[Role][]string),
		sheets: make(map[TableKind][]string),
	}
	for kind, roles := range defaultRoleCandidates {
		m.roles[kind] = make(map[Role][]string)
		for role, candidates := range roles {
			m.roles[kind][role] = append([]string(nil), candidates...)
		}
	}
	for kind, candidates := range defaultSheetCandidates {
		m.sheets[kind] = append([]string(nil), candidates...)
	}
	return m
}

// ApplyAliases appends user-supplied candidate spellings after the
// built-ins, keeping built-in priority intact.
func (m *Matcher) ApplyAliases(aliases *Aliases) {
	if aliases == nil {
		return
	}
	for kind, roles := range aliases.Roles {
		if m.roles[kind] == nil {
			continue
		}
		for role, extra := range roles {
			m.roles[kind][role] = append(m.roles[kind][role], extra...)
		}
	}
	for kind, extra := range aliases.Sheets {
		m.sheets[kind] = append(m.sheets[kind], extra...)
	}
}

// MatchColumn finds the header serving the given role in a table of the
// given kind. Returns the header as it appears in the source.
func (m *Matcher) MatchColumn(headers []string, kind TableKind, role Role) (string, bool) {
	return Match(headers, m.roles[kind][role])
}

// MatchSheet finds the workbook sheet holding the given kind of data.
func (m *Matcher) MatchSheet(sheetNames []string, kind TableKind) (string, bool) {
	return Match(sheetNames, m.sheets[kind])
}

// Match returns the best-matching present name for an ordered candidate
// list. Two passes, both case-insensitive on trimmed names: an exact
// equality pass over all candidates first, then a substring-containment
// pass. Exact matches always win over substring matches so a well-named
// column is never shadowed by a looser one.
func Match(present []string, candidates []string) (string, bool) {
	cleaned := make([]string, len(present))
	for i, name := range present {
		cleaned[i] = strings.TrimSpace(name)
	}

	for _, cand := range candidates {
		cand = strings.ToLower(strings.TrimSpace(cand))
		for i, name := range cleaned {
			if strings.ToLower(name) == cand {
				return present[i], true
			}
		}
	}

	for _, cand := range candidates {
		cand = strings.ToLower(strings.TrimSpace(cand))
		for i, name := range cleaned {
			if strings.Contains(strings.ToLower(name), cand) {
				return present[i], true
			}
		}
	}

	return "", false
}
