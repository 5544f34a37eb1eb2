package importer

import (
	"strings"
)

// Month tokens in lookup order. "sept" sits next to "sep" so September
// exports spelled either way land on the same label.
var monthTokens = []struct {
	token string
	label string
}{
	{"jan", "Jan"}, {"feb", "Feb"}, {"mar", "Mar"}, {"apr", "Apr"},
	{"may", "May"}, {"jun", "Jun"}, {"jul", "Jul"}, {"aug", "Aug"},
	{"sep", "Sep"}, {"sept", "Sep"}, {"oct", "Oct"}, {"nov", "Nov"}, {"dec", "Dec"},
}

// InferPeriod derives a period label from an export filename. The
// leftmost month token by string position wins; when nothing matches,
// the caller-supplied fallback is returned verbatim. The routine never
// reads the clock, so it is a pure function of its inputs.
func InferPeriod(filename, fallback string) string {
	lower := strings.ToLower(filename)

	bestIndex := -1
	bestLabel := ""
	for _, m := range monthTokens {
		index := strings.Index(lower, m.token)
		if index >= 0 && (bestIndex == -1 || index < bestIndex) {
			bestIndex = index
			bestLabel = m.label
		}
	}

	if bestIndex == -1 {
		return fallback
	}
	return bestLabel
}
