package importer

import (
	"testing"
)

func TestMatch_ExactBeatsSubstring(t *testing.T) {
	// "queries" is an exact match for a later candidate; "Top queries extra"
	// would match "query" as a substring. The exact pass must win even
	// though the substring candidate comes first in the list.
	present := []string{"Top queries extra", "queries"}
	candidates := []string{"query", "queries"}

	name, ok := Match(present, candidates)
	if !ok {
		t.Fatal("Expected a match")
	}
	if name != "queries" {
		t.Errorf("Expected exact match 'queries', got %q", name)
	}
}

func TestMatch_CaseInsensitiveAndTrimmed(t *testing.T) {
	present := []string{"  CLICKS  ", "Impressions"}

	name, ok := Match(present, []string{"clicks"})
	if !ok {
		t.Fatal("Expected a match")
	}
	if name != "  CLICKS  " {
		t.Errorf("Expected original header returned, got %q", name)
	}
}

func TestMatch_SubstringFallback(t *testing.T) {
	present := []string{"Top queries", "Clicks"}

	name, ok := Match(present, []string{"queries"})
	if !ok {
		t.Fatal("Expected a substring match")
	}
	if name != "Top queries" {
		t.Errorf("Expected 'Top queries', got %q", name)
	}
}

func TestMatch_CandidateOrderEncodesPriority(t *testing.T) {
	present := []string{"Keyword", "Query"}

	// "query" comes before "keyword" in the candidate list, so it wins
	// even though "Keyword" comes first among the present names.
	name, ok := Match(present, []string{"query", "keyword"})
	if !ok {
		t.Fatal("Expected a match")
	}
	if name != "Query" {
		t.Errorf("Expected 'Query', got %q", name)
	}
}

func TestMatch_NoneFound(t *testing.T) {
	present := []string{"Date", "Country"}

	if name, ok := Match(present, []string{"clicks", "click"}); ok {
		t.Errorf("Expected no match, got %q", name)
	}
}

func TestMatch_EmptyPresent(t *testing.T) {
	if name, ok := Match(nil, []string{"clicks"}); ok {
		t.Errorf("Expected no match on empty present list, got %q", name)
	}
}

func TestMatcher_MatchColumn(t *testing.T) {
	matcher := NewMatcher()
	headers := []string{"Top queries", "Clicks", "Impressions", "CTR", "Position"}

	tests := []struct {
		role     Role
		expected string
	}{
		{RoleName, "Top queries"},
		{RoleClicks, "Clicks"},
		{RoleImpressions, "Impressions"},
		{RoleCTR, "CTR"},
		{RolePosition, "Position"},
	}

	for _, tt := range tests {
		name, ok := matcher.MatchColumn(headers, TableKeywords, tt.role)
		if !ok {
			t.Errorf("Role %s: expected a match", tt.role)
			continue
		}
		if name != tt.expected {
			t.Errorf("Role %s: expected %q, got %q", tt.role, tt.expected, name)
		}
	}
}

func TestMatcher_MatchSheet(t *testing.T) {
	matcher := NewMatcher()
	sheets := []string{"Summary", "Top queries ", "Top pages"}

	name, ok := matcher.MatchSheet(sheets, TableKeywords)
	if !ok || name != "Top queries " {
		t.Errorf("Expected keyword sheet 'Top queries ', got %q (ok=%v)", name, ok)
	}

	name, ok = matcher.MatchSheet(sheets, TablePages)
	if !ok || name != "Top pages" {
		t.Errorf("Expected page sheet 'Top pages', got %q (ok=%v)", name, ok)
	}
}

func TestMatcher_AliasesExtendWithoutOverriding(t *testing.T) {
	matcher := NewMatcher()
	matcher.ApplyAliases(&Aliases{
		Roles: map[TableKind]map[Role][]string{
			TableKeywords: {RoleName: {"suchanfragen"}},
		},
		Sheets: map[TableKind][]string{
			TablePages: {"seiten"},
		},
	})

	name, ok := matcher.MatchColumn([]string{"Suchanfragen", "Klicks"}, TableKeywords, RoleName)
	if !ok || name != "Suchanfragen" {
		t.Errorf("Expected alias match 'Suchanfragen', got %q (ok=%v)", name, ok)
	}

	// Built-in candidates still take priority over aliases
	name, ok = matcher.MatchColumn([]string{"Suchanfragen", "Query"}, TableKeywords, RoleName)
	if !ok || name != "Query" {
		t.Errorf("Expected built-in 'Query' to win over alias, got %q (ok=%v)", name, ok)
	}

	name, ok = matcher.MatchSheet([]string{"Seiten"}, TablePages)
	if !ok || name != "Seiten" {
		t.Errorf("Expected alias sheet match 'Seiten', got %q (ok=%v)", name, ok)
	}
}
