package utils

import (
	"strings"
	"time"
)

// Date shapes seen on policy documents. Indian policies mostly print
// dd/mm/yyyy; OCR swaps the separators freely.
var dateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"2006/01/02",
	"2 January 2006",
	"January 2, 2006",
	"02/01/06",
}

// ParsePolicyDate tries to read a date out of an extracted field. Token
// extraction can hand back more than the date itself, so the whole string is
// tried first and then each whitespace token on its own.
func ParsePolicyDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	candidates := append([]string{s}, strings.Fields(s)...)
	for _, candidate := range candidates {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
