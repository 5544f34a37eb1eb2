package importer

import (
	"strconv"
	"strings"
)

// CleanNumeric coerces a noisy export cell into a number. Thousands
// separators, percent signs and surrounding whitespace are stripped
// before parsing. The second return value reports whether a value was
// present: parse failures and empty cells come back as (0, false),
// never as an error, so callers decide the fill policy.
func CleanNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.TrimSpace(s)

	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
