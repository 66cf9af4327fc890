package usecases

import (
	"strings"

	"immo-assistant/internal/entities"
)

// sensitiveKeywords are the terms that trigger an admin notification.
// The first three are contractual; the rest extend them.
var sensitiveKeywords = []string{
	"procès",
	"avocat",
	"litige",
	"contentieux",
	"tribunal",
	"huissier",
	"expulsion",
}

// DetectSensitive scans text for sensitive terms.
//
// Matching policy: case-insensitive, accent-insensitive SUBSTRING
// matching. "PROCES", "procès" and "litiges" all match; word
// boundaries are deliberately not required so inflected forms hit too.
// Returned terms are the canonical (accented) keywords, in list order,
// each at most once.
func DetectSensitive(text string) entities.KeywordMatch {
	folded := fold(text)
	if strings.TrimSpace(folded) == "" {
		return entities.KeywordMatch{}
	}

	var terms []string
	for _, kw := range sensitiveKeywords {
		if strings.Contains(folded, fold(kw)) {
			terms = append(terms, kw)
		}
	}
	return entities.KeywordMatch{Terms: terms}
}
