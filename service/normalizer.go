package service

import (
	"regexp"
	"strings"
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// Normalize lowercases the text and strips every rune outside the word and
// whitespace classes. It is total: any input yields some usable string.
func Normalize(text string) string {
	return nonWordPattern.ReplaceAllString(strings.ToLower(text), "")
}

// English stopwords dropped for similarity-oriented matching. The keyword
// rules run on the full normalized text; this trimmed form is only for
// matching paths that care about content words.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "have": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"or": true, "that": true, "the": true, "to": true, "was": true, "were": true,
	"what": true, "whats": true, "which": true, "will": true, "with": true,
}

// RemoveStopwords drops stopword tokens from already-normalized text.
func RemoveStopwords(text string) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if !stopwords[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
